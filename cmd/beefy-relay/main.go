// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/beefy-stakes/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "beefy-relay"
	app.Usage = "Follow BEEFY justifications and the stakes of their authority sets"
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:   "relay",
			Usage:  "Subscribe to the BEEFY justifications of a node and extract their stakes",
			Flags:  RelayFlags,
			Action: relayAction,
		},
		{
			Name:      "decode-payload",
			Usage:     "Decode a SCALE encoded BEEFY payload and print its stakes",
			ArgsUsage: "<0x prefixed hex payload>",
			Action:    decodePayloadAction,
		},
		{
			Name:   "build-payload",
			Usage:  "Build the BEEFY payload of a header from a chain state snapshot",
			Flags:  BuildPayloadFlags,
			Action: buildPayloadAction,
		},
	}
	app.Action = relayAction
	return app
}
