package repository_test

import (
	"context"
	"errors"

	"github.com/0Selene/DRManagerProject-Complete/internal/db"
	"github.com/0Selene/DRManagerProject-Complete/internal/repository"
	"github.com/0Selene/DRManagerProject-Complete/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegistryRepository", func() {
	var (
		repo        *repository.RegistryRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRegistryRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate the three tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Upload{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Content{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Transaction{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUpload", func() {
		var (
			upload repository.Upload
			err    error
		)

		BeforeEach(func() {
			upload = repository.Upload{
				ID:       uuid.NewString(),
				FileName: "track.mp3",
				Status:   repository.UploadStatusPending,
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUpload(ctx, upload)
		})

		When("the insert succeeds", func() {
			It("should store the record", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateRecordArgsForCall(0)
				Expect(record).To(Equal(&upload))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SetUploadResult", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.SetUploadResult(ctx, "upload-1", repository.UploadStatusCompleted, "bafkreigh2akiscaildc")
		})

		When("the record exists", func() {
			It("should update status and content address", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpdateByCallCount()).To(Equal(1))
				_, model, column, value, fields := fakeStorage.UpdateByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Upload{}))
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal("upload-1"))
				Expect(fields).To(Equal(map[string]any{
					"status":    repository.UploadStatusCompleted,
					"ipfs_hash": "bafkreigh2akiscaildc",
				}))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("should return upload not found error", func() {
				Expect(err).To(MatchError(repository.ErrUploadNotFound))
			})
		})
	})

	Describe("GetUpload", func() {
		var (
			upload repository.Upload
			err    error
		)

		JustBeforeEach(func() {
			upload, err = repo.GetUpload(ctx, "upload-1")
		})

		When("the record exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByCalls(func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("id"))
					Expect(value).To(Equal("upload-1"))
					*(entity.(*repository.Upload)) = repository.Upload{
						ID:     "upload-1",
						Status: repository.UploadStatusCompleted,
					}
					return nil
				})
			})

			It("should return the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(upload.ID).To(Equal("upload-1"))
				Expect(upload.Status).To(Equal(repository.UploadStatusCompleted))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return upload not found error", func() {
				Expect(err).To(MatchError(repository.ErrUploadNotFound))
			})
		})
	})

	Describe("CreateContent", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.CreateContent(ctx, repository.Content{ID: "content-1"})
		})

		When("the insert succeeds", func() {
			It("should store the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.CreateRecordCallCount()).To(Equal(1))
			})
		})

		When("the owner already registered the address", func() {
			BeforeEach(func() {
				fakeStorage.CreateRecordReturns(db.ErrDuplicate)
			})

			It("should return duplicate content error", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateContent))
			})
		})
	})

	Describe("ContentByOwner", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.ContentByOwner(ctx, "0xabc")
		})

		It("should query by owner, newest first", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
			_, column, value, entity, opts := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("user_address"))
			Expect(value).To(Equal([]string{"0xabc"}))
			Expect(entity).To(BeAssignableToTypeOf(&[]repository.Content{}))
			Expect(opts.OrderBy).To(Equal("created_at DESC"))
			Expect(opts.Limit).To(Equal(0))
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("MarketplaceContent", func() {
		It("should list registered and active records with a limit", func() {
			_, err := repo.MarketplaceContent(ctx, 50)
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _, opts := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("status"))
			Expect(value).To(Equal([]string{repository.ContentStatusRegistered, repository.ContentStatusActive}))
			Expect(opts.OrderBy).To(Equal("created_at DESC"))
			Expect(opts.Limit).To(Equal(50))
		})
	})

	Describe("PendingVerification", func() {
		It("should list registered records, oldest first", func() {
			_, err := repo.PendingVerification(ctx, 25)
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _, opts := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("status"))
			Expect(value).To(Equal([]string{repository.ContentStatusRegistered}))
			Expect(opts.OrderBy).To(Equal("created_at ASC"))
			Expect(opts.Limit).To(Equal(25))
		})
	})

	Describe("SetContentStatus", func() {
		It("should update the status column", func() {
			err := repo.SetContentStatus(ctx, "content-1", repository.ContentStatusActive)
			Expect(err).NotTo(HaveOccurred())

			_, model, column, value, fields := fakeStorage.UpdateByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Content{}))
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("content-1"))
			Expect(fields).To(Equal(map[string]any{"status": repository.ContentStatusActive}))
		})
	})

	Describe("TransactionsByUser", func() {
		It("should query the transaction log by owner", func() {
			_, err := repo.TransactionsByUser(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())

			_, column, value, entity, opts := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("user_address"))
			Expect(value).To(Equal([]string{"0xabc"}))
			Expect(entity).To(BeAssignableToTypeOf(&[]repository.Transaction{}))
			Expect(opts.OrderBy).To(Equal("created_at DESC"))
		})
	})

	Describe("Totals", func() {
		var (
			totals repository.Totals
			err    error
		)

		JustBeforeEach(func() {
			totals, err = repo.Totals(ctx)
		})

		When("all counts succeed", func() {
			BeforeEach(func() {
				fakeStorage.CountByReturnsOnCall(0, 10, nil)
				fakeStorage.CountByReturnsOnCall(1, 7, nil)
				fakeStorage.CountByReturnsOnCall(2, 21, nil)
				fakeStorage.CountDistinctReturns(4, nil)
			})

			It("should aggregate table counts and distinct owners", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(totals).To(Equal(repository.Totals{
					Uploads:      10,
					Contents:     7,
					Transactions: 21,
					Owners:       4,
				}))

				Expect(fakeStorage.CountByCallCount()).To(Equal(3))
				Expect(fakeStorage.CountDistinctCallCount()).To(Equal(1))
				_, model, column := fakeStorage.CountDistinctArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Content{}))
				Expect(column).To(Equal("user_address"))
			})
		})

		When("a count fails", func() {
			BeforeEach(func() {
				fakeStorage.CountByReturnsOnCall(1, 0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
