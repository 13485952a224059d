// Package domain contains the core model for qr.
//
// The domain does not depend on the terminal, the QR encoder, or the
// filesystem. Infra/adapters map into/from these types.
package domain
