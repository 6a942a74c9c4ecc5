// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authority

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . CommitteeGetter
