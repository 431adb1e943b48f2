// Package cli implements ledgerctl, the command-line client of the ledger.
//
// Commands are built with cobra. login proves control of a secp256k1 key and
// stores the issued access token in a session file; later commands reuse it.
// Amounts are entered and shown in ether and travel as wei. Vote weights are
// encrypted locally with the network input key before they leave the
// machine.
package cli
