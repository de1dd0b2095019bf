package ethereum

// Confirmation reports the mined state of one ledger transaction.
type Confirmation struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
	Succeeded   bool
}
