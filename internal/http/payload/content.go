package payload

import (
	"regexp"

	"github.com/jellydator/validation"

	"github.com/0Selene/DRManagerProject-Complete/internal/core"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
var txHashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

type RegisterContentRequest struct {
	UserAddress string `json:"userAddress"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	IPFSHash    string `json:"ipfsHash"`
	TxHash      string `json:"txHash"`
	BlockNumber int64  `json:"blockNumber"`
}

func (c RegisterContentRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UserAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.IPFSHash, validation.Required),
		validation.Field(&c.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}

func (c RegisterContentRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		UserAddress: c.UserAddress,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		IPFSHash:    c.IPFSHash,
		TxHash:      c.TxHash,
		BlockNumber: c.BlockNumber,
	}
}
