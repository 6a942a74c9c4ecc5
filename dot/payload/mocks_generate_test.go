// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package payload

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . ChainState
