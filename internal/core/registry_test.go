package core_test

import (
	"context"
	"errors"

	"github.com/0Selene/DRManagerProject-Complete/internal/core"
	"github.com/0Selene/DRManagerProject-Complete/internal/core/fake"
	"github.com/0Selene/DRManagerProject-Complete/internal/ipfs"
	"github.com/0Selene/DRManagerProject-Complete/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Registry", func() {
	var (
		fakeRepo    *fake.Repository
		fakeStorage *fake.StorageService
		fakeLedger  *fake.LedgerService
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		registry *core.Registry

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeStorage = new(fake.StorageService)
		fakeLedger = new(fake.LedgerService)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		registry = core.NewRegistry(fakeLogger, fakeRepo, fakeStorage, fakeLedger)

		fakeErr = errors.New("fake error")
	})

	Describe("UploadFile", func() {
		var (
			msg    core.UploadMessage
			result core.UploadResult
			err    error
		)

		BeforeEach(func() {
			msg = core.UploadMessage{
				FileName: "track.mp3",
				MimeType: "audio/mpeg",
				Data:     []byte("some audio bytes"),
			}

			fakeStorage.StoreReturns(ipfs.StoredObject{
				CID:         "bafkreigh2akiscaildc",
				Fingerprint: "deadbeef",
				GatewayURL:  "https://ipfs.io/ipfs/bafkreigh2akiscaildc",
				Size:        int64(len(msg.Data)),
			}, nil)
		})

		JustBeforeEach(func() {
			result, err = registry.UploadFile(ctx, msg)
		})

		When("the upload succeeds", func() {
			It("should record the attempt and return the stored object", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUploadCallCount()).To(Equal(1))
				_, created := fakeRepo.CreateUploadArgsForCall(0)
				Expect(created.ID).NotTo(BeEmpty())
				Expect(created.FileName).To(Equal("track.mp3"))
				Expect(created.FileSize).To(Equal(int64(len(msg.Data))))
				Expect(created.MimeType).To(Equal("audio/mpeg"))
				Expect(created.Status).To(Equal(repository.UploadStatusPending))

				Expect(fakeStorage.StoreCallCount()).To(Equal(1))
				_, data, fileName := fakeStorage.StoreArgsForCall(0)
				Expect(data).To(Equal(msg.Data))
				Expect(fileName).To(Equal("track.mp3"))

				Expect(fakeRepo.SetUploadResultCallCount()).To(Equal(1))
				_, id, status, ipfsHash := fakeRepo.SetUploadResultArgsForCall(0)
				Expect(id).To(Equal(created.ID))
				Expect(status).To(Equal(repository.UploadStatusCompleted))
				Expect(ipfsHash).To(Equal("bafkreigh2akiscaildc"))

				Expect(result.UploadID).To(Equal(created.ID))
				Expect(result.IPFSHash).To(Equal("bafkreigh2akiscaildc"))
				Expect(result.FileName).To(Equal("track.mp3"))
				Expect(result.FileSize).To(Equal(int64(len(msg.Data))))
				Expect(result.Fingerprint).To(Equal("deadbeef"))
				Expect(result.GatewayURL).To(Equal("https://ipfs.io/ipfs/bafkreigh2akiscaildc"))
			})
		})

		When("the payload is empty", func() {
			BeforeEach(func() {
				msg.Data = nil
			})

			It("should return missing input error without touching the index", func() {
				Expect(err).To(MatchError(core.ErrMissingInput))
				Expect(fakeRepo.CreateUploadCallCount()).To(Equal(0))
				Expect(fakeStorage.StoreCallCount()).To(Equal(0))
			})
		})

		When("the upload record cannot be created", func() {
			BeforeEach(func() {
				fakeRepo.CreateUploadReturns(fakeErr)
			})

			It("should return the error without calling the storage network", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.StoreCallCount()).To(Equal(0))
			})
		})

		When("the storage network rejects the file", func() {
			BeforeEach(func() {
				fakeStorage.StoreReturns(ipfs.StoredObject{}, fakeErr)
			})

			It("should mark the upload as failed and return the error", func() {
				Expect(err).To(MatchError(fakeErr))

				Expect(fakeRepo.SetUploadResultCallCount()).To(Equal(1))
				_, id, status, ipfsHash := fakeRepo.SetUploadResultArgsForCall(0)
				_, created := fakeRepo.CreateUploadArgsForCall(0)
				Expect(id).To(Equal(created.ID))
				Expect(status).To(Equal(repository.UploadStatusFailed))
				Expect(ipfsHash).To(BeEmpty())
			})
		})
	})

	Describe("RegisterContent", func() {
		var (
			msg       core.RegisterMessage
			contentId string
			err       error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				UserAddress: "0xAbC0000000000000000000000000000000000001",
				Title:       "Sunset over the bay",
				Description: "4k photograph",
				Category:    "image",
				Price:       "0.05",
				IPFSHash:    "bafkreigh2akiscaildc",
				TxHash:      "0x1122",
				BlockNumber: 1842,
			}
		})

		JustBeforeEach(func() {
			contentId, err = registry.RegisterContent(ctx, msg)
		})

		When("the registration is valid", func() {
			It("should persist the content record with a normalized owner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(contentId).NotTo(BeEmpty())

				Expect(fakeRepo.CreateContentCallCount()).To(Equal(1))
				_, content := fakeRepo.CreateContentArgsForCall(0)
				Expect(content.ID).To(Equal(contentId))
				Expect(content.UserAddress).To(Equal("0xabc0000000000000000000000000000000000001"))
				Expect(content.Title).To(Equal(msg.Title))
				Expect(content.Category).To(Equal("image"))
				Expect(content.Price.String()).To(Equal("0.05"))
				Expect(content.IPFSHash).To(Equal(msg.IPFSHash))
				Expect(content.TxHash).To(Equal(msg.TxHash))
				Expect(content.BlockNumber).To(Equal(int64(1842)))
				Expect(content.Status).To(Equal(repository.ContentStatusRegistered))
			})

			It("should append a register entry to the transaction log", func() {
				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(1))
				_, tx := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(tx.Type).To(Equal(repository.TransactionTypeRegister))
				Expect(tx.UserAddress).To(Equal("0xabc0000000000000000000000000000000000001"))
				Expect(tx.ContentID).NotTo(BeNil())
				Expect(*tx.ContentID).To(Equal(contentId))
				Expect(tx.TxHash).To(Equal(msg.TxHash))
				Expect(tx.Amount.IsZero()).To(BeTrue())
			})
		})

		When("the category is omitted", func() {
			BeforeEach(func() {
				msg.Category = ""
			})

			It("should default the category", func() {
				Expect(err).NotTo(HaveOccurred())
				_, content := fakeRepo.CreateContentArgsForCall(0)
				Expect(content.Category).To(Equal("other"))
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				msg.TxHash = ""
			})

			It("should return missing input error", func() {
				Expect(err).To(MatchError(core.ErrMissingInput))
				Expect(fakeRepo.CreateContentCallCount()).To(Equal(0))
			})
		})

		When("the price is not a decimal", func() {
			BeforeEach(func() {
				msg.Price = "free"
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRepo.CreateContentCallCount()).To(Equal(0))
			})
		})

		When("the content is already registered for the owner", func() {
			BeforeEach(func() {
				fakeRepo.CreateContentReturns(repository.ErrDuplicateContent)
			})

			It("should return duplicate content error", func() {
				Expect(err).To(MatchError(core.ErrDuplicateContent))
				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the transaction log append fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateTransactionReturns(fakeErr)
			})

			It("should still report a successful registration", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(contentId).NotTo(BeEmpty())
			})
		})
	})

	Describe("RecordTransaction", func() {
		var (
			msg           core.TransactionMessage
			transactionId string
			err           error
		)

		BeforeEach(func() {
			msg = core.TransactionMessage{
				Type:        repository.TransactionTypePurchase,
				UserAddress: "0xDeF0000000000000000000000000000000000002",
				ContentID:   "content-1",
				TxHash:      "0xfeed",
				Amount:      "1.25",
				BlockNumber: 77,
				GasUsed:     21000,
			}
		})

		JustBeforeEach(func() {
			transactionId, err = registry.RecordTransaction(ctx, msg)
		})

		When("the entry is valid", func() {
			It("should append the entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactionId).NotTo(BeEmpty())

				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(1))
				_, tx := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(tx.ID).To(Equal(transactionId))
				Expect(tx.Type).To(Equal(repository.TransactionTypePurchase))
				Expect(tx.UserAddress).To(Equal("0xdef0000000000000000000000000000000000002"))
				Expect(tx.ContentID).NotTo(BeNil())
				Expect(*tx.ContentID).To(Equal("content-1"))
				Expect(tx.Amount.String()).To(Equal("1.25"))
				Expect(tx.GasUsed).To(Equal(int64(21000)))
			})
		})

		When("the content reference is omitted", func() {
			BeforeEach(func() {
				msg.ContentID = ""
			})

			It("should store a nil content reference", func() {
				Expect(err).NotTo(HaveOccurred())
				_, tx := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(tx.ContentID).To(BeNil())
			})
		})

		When("the type is unknown", func() {
			BeforeEach(func() {
				msg.Type = "donation"
			})

			It("should return unknown transaction type error", func() {
				Expect(err).To(MatchError(core.ErrUnknownTransactionType))
				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the hash is missing", func() {
			BeforeEach(func() {
				msg.TxHash = ""
			})

			It("should return missing input error", func() {
				Expect(err).To(MatchError(core.ErrMissingInput))
			})
		})
	})

	Describe("UserContent", func() {
		var (
			records []core.ContentRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = registry.UserContent(ctx, "0xAbC0000000000000000000000000000000000001")
		})

		When("the owner has content", func() {
			BeforeEach(func() {
				fakeRepo.ContentByOwnerReturns([]repository.Content{
					{
						ID:          "content-1",
						UserAddress: "0xabc0000000000000000000000000000000000001",
						Title:       "Sunset over the bay",
						Price:       decimal.RequireFromString("0.05"),
						Status:      repository.ContentStatusActive,
					},
				}, nil)
			})

			It("should return the records with the lookup address lowercased", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.ContentByOwnerCallCount()).To(Equal(1))
				_, address := fakeRepo.ContentByOwnerArgsForCall(0)
				Expect(address).To(Equal("0xabc0000000000000000000000000000000000001"))

				Expect(records).To(HaveLen(1))
				Expect(records[0].ID).To(Equal("content-1"))
				Expect(records[0].Price).To(Equal("0.05"))
				Expect(records[0].Status).To(Equal(repository.ContentStatusActive))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.ContentByOwnerReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Marketplace", func() {
		It("should cap the listing size", func() {
			_, err := registry.Marketplace(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.MarketplaceContentCallCount()).To(Equal(1))
			_, limit := fakeRepo.MarketplaceContentArgsForCall(0)
			Expect(limit).To(Equal(50))
		})
	})

	Describe("UploadStatus", func() {
		var (
			record core.UploadRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = registry.UploadStatus(ctx, "upload-1")
		})

		When("the upload exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUploadReturns(repository.Upload{
					ID:       "upload-1",
					FileName: "track.mp3",
					FileSize: 16,
					IPFSHash: "bafkreigh2akiscaildc",
					Status:   repository.UploadStatusCompleted,
				}, nil)
			})

			It("should return the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal("upload-1"))
				Expect(record.Status).To(Equal(repository.UploadStatusCompleted))
				Expect(record.IPFSHash).To(Equal("bafkreigh2akiscaildc"))
			})
		})

		When("the upload does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUploadReturns(repository.Upload{}, repository.ErrUploadNotFound)
			})

			It("should return upload not found error", func() {
				Expect(err).To(MatchError(core.ErrUploadNotFound))
			})
		})
	})

	Describe("UserStats", func() {
		var (
			stats core.UserStats
			err   error
		)

		JustBeforeEach(func() {
			stats, err = registry.UserStats(ctx, "0xAbC0000000000000000000000000000000000001")
		})

		When("the user has activity", func() {
			BeforeEach(func() {
				fakeRepo.ContentByOwnerReturns([]repository.Content{{ID: "c1"}, {ID: "c2"}}, nil)
				fakeRepo.TransactionsByUserReturns([]repository.Transaction{
					{Type: repository.TransactionTypePurchase, Amount: decimal.RequireFromString("0.1")},
					{Type: repository.TransactionTypePurchase, Amount: decimal.RequireFromString("0.2")},
					{Type: repository.TransactionTypeLicense, Amount: decimal.RequireFromString("0.5")},
					{Type: repository.TransactionTypeRegister},
				}, nil)
			})

			It("should aggregate earnings as decimals", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.TotalFiles).To(Equal(2))
				Expect(stats.TotalEarnings).To(Equal("0.3000"))
				Expect(stats.ActiveLicenses).To(Equal(1))
				Expect(stats.TotalTransactions).To(Equal(4))
			})
		})

		When("the user has no activity", func() {
			It("should report zero earnings", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.TotalEarnings).To(Equal("0.0000"))
				Expect(stats.TotalFiles).To(Equal(0))
			})
		})

		When("the transaction lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.TransactionsByUserReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GlobalStats", func() {
		When("the counts are available", func() {
			BeforeEach(func() {
				fakeRepo.TotalsReturns(repository.Totals{
					Uploads:      10,
					Contents:     7,
					Transactions: 21,
					Owners:       4,
				}, nil)
			})

			It("should return the platform totals", func() {
				stats, err := registry.GlobalStats(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.TotalUploads).To(Equal(int64(10)))
				Expect(stats.TotalContents).To(Equal(int64(7)))
				Expect(stats.TotalTransactions).To(Equal(int64(21)))
				Expect(stats.TotalUsers).To(Equal(int64(4)))
			})
		})
	})

	Describe("Health", func() {
		var report core.HealthReport

		JustBeforeEach(func() {
			report = registry.Health(ctx)
		})

		When("every dependency responds", func() {
			BeforeEach(func() {
				fakeRepo.TotalsReturns(repository.Totals{Uploads: 1, Contents: 2, Transactions: 3}, nil)
			})

			It("should report healthy with index counts", func() {
				Expect(report.Status).To(Equal("healthy"))
				Expect(report.Services["api"]).To(Equal("running"))
				Expect(report.Services["database"]).To(Equal("healthy"))
				Expect(report.Services["ipfs"]).To(Equal("healthy"))
				Expect(report.Services["ethereum"]).To(Equal("healthy"))
				Expect(report.Stats.TotalUploads).To(Equal(int64(1)))
				Expect(report.Stats.TotalContents).To(Equal(int64(2)))
				Expect(report.Stats.TotalTransactions).To(Equal(int64(3)))
			})
		})

		When("the database is down", func() {
			BeforeEach(func() {
				fakeRepo.TotalsReturns(repository.Totals{}, fakeErr)
			})

			It("should report the process unhealthy", func() {
				Expect(report.Status).To(Equal("unhealthy"))
				Expect(report.Services["database"]).To(Equal("error"))
			})
		})

		When("only the storage network is down", func() {
			BeforeEach(func() {
				fakeStorage.HealthyReturns(fakeErr)
			})

			It("should stay healthy but flag the service", func() {
				Expect(report.Status).To(Equal("healthy"))
				Expect(report.Services["ipfs"]).To(Equal("error"))
				Expect(report.Services["ethereum"]).To(Equal("healthy"))
			})
		})
	})
})
