package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/0Selene/DRManagerProject-Complete/internal/core"
	"github.com/0Selene/DRManagerProject-Complete/internal/core/fake"
	"github.com/0Selene/DRManagerProject-Complete/internal/ethereum"
	"github.com/0Selene/DRManagerProject-Complete/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Verifier", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLedger *fake.LedgerService
		ctx        context.Context

		verifier *core.Verifier

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLedger = new(fake.LedgerService)
		ctx = context.Background()

		verifier = core.NewVerifier(zap.NewNop().Sugar(), fakeRepo, fakeLedger, time.Second)

		fakeErr = errors.New("fake error")
	})

	Describe("Sweep", func() {
		var pending []repository.Content

		BeforeEach(func() {
			pending = []repository.Content{
				{ID: "content-1", TxHash: "0xaaa", Status: repository.ContentStatusRegistered},
			}
			fakeRepo.PendingVerificationReturns(pending, nil)
		})

		JustBeforeEach(func() {
			verifier.Sweep(ctx)
		})

		When("the transaction is mined successfully", func() {
			BeforeEach(func() {
				fakeLedger.ConfirmReturns(&ethereum.Confirmation{
					TxHash:      "0xaaa",
					BlockNumber: 42,
					Succeeded:   true,
				}, nil)
			})

			It("should activate the content record", func() {
				Expect(fakeLedger.ConfirmCallCount()).To(Equal(1))
				_, txHash := fakeLedger.ConfirmArgsForCall(0)
				Expect(txHash).To(Equal("0xaaa"))

				Expect(fakeRepo.SetContentStatusCallCount()).To(Equal(1))
				_, id, status := fakeRepo.SetContentStatusArgsForCall(0)
				Expect(id).To(Equal("content-1"))
				Expect(status).To(Equal(repository.ContentStatusActive))
			})
		})

		When("the transaction is mined as failed", func() {
			BeforeEach(func() {
				fakeLedger.ConfirmReturns(&ethereum.Confirmation{
					TxHash:    "0xaaa",
					Succeeded: false,
				}, nil)
			})

			It("should deactivate the content record", func() {
				Expect(fakeRepo.SetContentStatusCallCount()).To(Equal(1))
				_, id, status := fakeRepo.SetContentStatusArgsForCall(0)
				Expect(id).To(Equal("content-1"))
				Expect(status).To(Equal(repository.ContentStatusInactive))
			})
		})

		When("the transaction is not yet confirmed", func() {
			BeforeEach(func() {
				fakeLedger.ConfirmReturns(nil, ethereum.ErrNotConfirmed)
			})

			It("should leave the record for the next sweep", func() {
				Expect(fakeRepo.SetContentStatusCallCount()).To(Equal(0))
			})
		})

		When("the ledger lookup fails", func() {
			BeforeEach(func() {
				pending = append(pending, repository.Content{
					ID:     "content-2",
					TxHash: "0xbbb",
					Status: repository.ContentStatusRegistered,
				})
				fakeRepo.PendingVerificationReturns(pending, nil)

				fakeLedger.ConfirmReturnsOnCall(0, nil, fakeErr)
				fakeLedger.ConfirmReturnsOnCall(1, &ethereum.Confirmation{Succeeded: true}, nil)
			})

			It("should skip the record and keep sweeping", func() {
				Expect(fakeLedger.ConfirmCallCount()).To(Equal(2))
				Expect(fakeRepo.SetContentStatusCallCount()).To(Equal(1))
				_, id, _ := fakeRepo.SetContentStatusArgsForCall(0)
				Expect(id).To(Equal("content-2"))
			})
		})

		When("no registrations await verification", func() {
			BeforeEach(func() {
				fakeRepo.PendingVerificationReturns(nil, nil)
			})

			It("should not touch the ledger", func() {
				Expect(fakeLedger.ConfirmCallCount()).To(Equal(0))
			})
		})

		When("the pending lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.PendingVerificationReturns(nil, fakeErr)
			})

			It("should not touch the ledger", func() {
				Expect(fakeLedger.ConfirmCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Run", func() {
		It("should sweep on every tick until the context is cancelled", func() {
			runCtx, cancel := context.WithCancel(ctx)
			verifier = core.NewVerifier(zap.NewNop().Sugar(), fakeRepo, fakeLedger, 10*time.Millisecond)

			done := make(chan struct{})
			go func() {
				defer close(done)
				verifier.Run(runCtx)
			}()

			Eventually(fakeRepo.PendingVerificationCallCount).Should(BeNumerically(">=", 2))

			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})
