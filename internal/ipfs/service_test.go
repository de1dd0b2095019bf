package ipfs_test

import (
	"context"
	"errors"
	"os"

	"github.com/0Selene/DRManagerProject-Complete/internal/ipfs"
	"github.com/0Selene/DRManagerProject-Complete/internal/ipfs/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		fakePinner *fake.Pinner
		service    *ipfs.Service
		ctx        context.Context

		stagingDir string
		data       []byte
		localCid   string

		fakeErr error
	)

	BeforeEach(func() {
		fakePinner = new(fake.Pinner)
		stagingDir = GinkgoT().TempDir()
		service = ipfs.NewService(fakePinner, "https://ipfs.io/ipfs/%s", stagingDir)
		ctx = context.Background()

		data = []byte("some content bytes that are long enough to not be inlined")
		sum, err := ipfs.SumCid(data)
		Expect(err).NotTo(HaveOccurred())
		localCid = sum.String()

		fakeErr = errors.New("fake error")
	})

	stagingEntries := func() []os.DirEntry {
		entries, err := os.ReadDir(stagingDir)
		Expect(err).NotTo(HaveOccurred())
		return entries
	}

	Describe("Store", func() {
		When("the service reports the expected address", func() {
			BeforeEach(func() {
				fakePinner.AddFileCalls(func(_ context.Context, filePath, name string) (ipfs.AddResponse, error) {
					staged, err := os.ReadFile(filePath)
					Expect(err).NotTo(HaveOccurred())
					Expect(staged).To(Equal(data))
					Expect(name).To(Equal("track.mp3"))
					return ipfs.AddResponse{Cid: localCid}, nil
				})
			})

			It("should return the stored object and clean the staging dir", func() {
				obj, err := service.Store(ctx, data, "track.mp3")
				Expect(err).NotTo(HaveOccurred())

				Expect(obj.CID).To(Equal(localCid))
				Expect(obj.Fingerprint).To(Equal(ipfs.Fingerprint(data)))
				Expect(obj.GatewayURL).To(Equal("https://ipfs.io/ipfs/" + localCid))
				Expect(obj.Size).To(Equal(int64(len(data))))

				Expect(fakePinner.AddFileCallCount()).To(Equal(1))
				Expect(stagingEntries()).To(BeEmpty())
			})
		})

		When("the service reports no address", func() {
			BeforeEach(func() {
				fakePinner.AddFileReturns(ipfs.AddResponse{}, nil)
			})

			It("should fall back to the locally computed address", func() {
				obj, err := service.Store(ctx, data, "track.mp3")
				Expect(err).NotTo(HaveOccurred())
				Expect(obj.CID).To(Equal(localCid))
			})
		})

		When("the service reports a different address", func() {
			BeforeEach(func() {
				fakePinner.AddFileReturns(ipfs.AddResponse{Cid: "bafybeibogus"}, nil)
			})

			It("should refuse the upload and clean the staging dir", func() {
				_, err := service.Store(ctx, data, "track.mp3")
				Expect(err).To(MatchError(ipfs.ErrAddressMismatch))
				Expect(stagingEntries()).To(BeEmpty())
			})
		})

		When("the service call fails", func() {
			BeforeEach(func() {
				fakePinner.AddFileReturns(ipfs.AddResponse{}, fakeErr)
			})

			It("should return the error and clean the staging dir", func() {
				_, err := service.Store(ctx, data, "track.mp3")
				Expect(err).To(MatchError(fakeErr))
				Expect(stagingEntries()).To(BeEmpty())
			})
		})

		When("the payload is empty", func() {
			It("should return empty payload error without calling the service", func() {
				_, err := service.Store(ctx, nil, "track.mp3")
				Expect(err).To(MatchError(ipfs.ErrEmptyPayload))
				Expect(fakePinner.AddFileCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Healthy", func() {
		It("should delegate to the pinning service", func() {
			Expect(service.Healthy(ctx)).To(Succeed())
			Expect(fakePinner.PingCallCount()).To(Equal(1))
		})

		When("the pinning service is down", func() {
			BeforeEach(func() {
				fakePinner.PingReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(service.Healthy(ctx)).To(MatchError(fakeErr))
			})
		})
	})
})
