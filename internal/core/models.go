package core

import "time"

type UploadMessage struct {
	FileName string
	MimeType string
	Data     []byte
}

type UploadResult struct {
	UploadID    string `json:"uploadId"`
	IPFSHash    string `json:"ipfsHash"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	Fingerprint string `json:"sha256"`
	GatewayURL  string `json:"gatewayUrl"`
}

type RegisterMessage struct {
	UserAddress string
	Title       string
	Description string
	Category    string
	Price       string
	IPFSHash    string
	TxHash      string
	BlockNumber int64
}

type TransactionMessage struct {
	Type        string
	UserAddress string
	ContentID   string
	TxHash      string
	Amount      string
	BlockNumber int64
	GasUsed     int64
}

type UploadRecord struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	FileSize  int64     `json:"fileSize"`
	MimeType  string    `json:"mimeType"`
	IPFSHash  string    `json:"ipfsHash"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContentRecord struct {
	ID          string    `json:"id"`
	UserAddress string    `json:"userAddress"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       string    `json:"price"`
	IPFSHash    string    `json:"ipfsHash"`
	TxHash      string    `json:"txHash"`
	BlockNumber int64     `json:"blockNumber"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UserStats struct {
	TotalFiles        int    `json:"totalFiles"`
	TotalEarnings     string `json:"totalEarnings"`
	ActiveLicenses    int    `json:"activeLicenses"`
	TotalTransactions int    `json:"totalTransactions"`
}

type GlobalStats struct {
	TotalUploads      int64 `json:"totalUploads"`
	TotalContents     int64 `json:"totalContents"`
	TotalTransactions int64 `json:"totalTransactions"`
	TotalUsers        int64 `json:"totalUsers"`
}

type HealthCounts struct {
	TotalUploads      int64 `json:"totalUploads"`
	TotalContents     int64 `json:"totalContents"`
	TotalTransactions int64 `json:"totalTransactions"`
}

type HealthReport struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Stats     HealthCounts      `json:"stats"`
}
