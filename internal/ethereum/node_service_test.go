package ethereum_test

import (
	"context"
	"errors"
	"math/big"

	"github.com/0Selene/DRManagerProject-Complete/internal/ethereum"
	"github.com/0Selene/DRManagerProject-Complete/internal/ethereum/fake"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NodeService", func() {
	var (
		fakeClient *fake.EthClient
		service    *ethereum.NodeService
		ctx        context.Context

		txHash  string
		fakeErr error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		service = ethereum.NewNodeService(fakeClient)
		ctx = context.Background()

		txHash = "0x6e29395a954a6ae39aca28e7c12dfbedc27d2e1be38d4efa387dd7c3f1fbbdfe"
		fakeErr = errors.New("fake error")
	})

	Describe("Confirm", func() {
		var (
			confirmation *ethereum.Confirmation
			err          error
		)

		JustBeforeEach(func() {
			confirmation, err = service.Confirm(ctx, txHash)
		})

		When("the receipt reports a successful transaction", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					TxHash:      common.HexToHash(txHash),
					BlockNumber: big.NewInt(1842),
					GasUsed:     21000,
					Status:      types.ReceiptStatusSuccessful,
				}, nil)
			})

			It("should return a successful confirmation", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(1))
				_, hash := fakeClient.TransactionReceiptArgsForCall(0)
				Expect(hash).To(Equal(common.HexToHash(txHash)))

				Expect(confirmation.TxHash).To(Equal(common.HexToHash(txHash).Hex()))
				Expect(confirmation.BlockNumber).To(Equal(uint64(1842)))
				Expect(confirmation.GasUsed).To(Equal(uint64(21000)))
				Expect(confirmation.Succeeded).To(BeTrue())
			})
		})

		When("the receipt reports a failed transaction", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					TxHash:      common.HexToHash(txHash),
					BlockNumber: big.NewInt(1842),
					Status:      types.ReceiptStatusFailed,
				}, nil)
			})

			It("should return a failed confirmation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(confirmation.Succeeded).To(BeFalse())
			})
		})

		When("the transaction is not mined yet", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, goethereum.NotFound)
			})

			It("should return not confirmed error", func() {
				Expect(err).To(MatchError(ethereum.ErrNotConfirmed))
				Expect(confirmation).To(BeNil())
			})
		})

		When("the node call fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Healthy", func() {
		When("the node responds", func() {
			BeforeEach(func() {
				fakeClient.NetworkIDReturns(big.NewInt(1), nil)
			})

			It("should report healthy", func() {
				Expect(service.Healthy(ctx)).To(Succeed())
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				fakeClient.NetworkIDReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(service.Healthy(ctx)).To(MatchError(fakeErr))
			})
		})
	})
})
