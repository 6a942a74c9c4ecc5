// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relay

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ChainSafe/beefy-stakes/internal/log"
	gethlog "github.com/ethereum/go-ethereum/log"
)

// rpcLogger logs the records of the RPC transport, written
// through the go-ethereum root logger.
var rpcLogger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

var forwardRPCLogsOnce sync.Once

func forwardRPCLogs() {
	forwardRPCLogsOnce.Do(func() {
		gethlog.Root().SetHandler(gethlog.FuncHandler(func(record *gethlog.Record) error {
			logRPCRecord(rpcLogger, record)
			return nil
		}))
	})
}

func logRPCRecord(logger log.LeveledLogger, record *gethlog.Record) {
	message := formatRPCRecord(record)
	switch record.Lvl {
	case gethlog.LvlCrit:
		logger.Critical(message)
	case gethlog.LvlError:
		logger.Error(message)
	case gethlog.LvlWarn:
		logger.Warn(message)
	case gethlog.LvlInfo:
		logger.Info(message)
	case gethlog.LvlDebug:
		logger.Debug(message)
	default:
		logger.Trace(message)
	}
}

func formatRPCRecord(record *gethlog.Record) string {
	var builder strings.Builder
	builder.WriteString(record.Msg)
	for i := 0; i+1 < len(record.Ctx); i += 2 {
		builder.WriteString(fmt.Sprintf(" %v=%v", record.Ctx[i], record.Ctx[i+1]))
	}
	return builder.String()
}

// SetRPCLogLevel sets the log level of the RPC transport records.
func SetRPCLogLevel(level log.Level) {
	rpcLogger.PatchLevel(level)
}
