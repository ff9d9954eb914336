// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the API session, client services, and background session
// keep-alive into a single process lifecycle.
package client
