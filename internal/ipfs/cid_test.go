package ipfs_test

import (
	"bytes"

	"github.com/0Selene/DRManagerProject-Complete/internal/ipfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fingerprint", func() {
	It("should return the hex sha256 of the bytes", func() {
		Expect(ipfs.Fingerprint([]byte("hello world"))).To(
			Equal("b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"))
	})

	It("should differ for different bytes", func() {
		Expect(ipfs.Fingerprint([]byte("a"))).NotTo(Equal(ipfs.Fingerprint([]byte("b"))))
	})
})

var _ = Describe("SumCid", func() {
	It("should derive the same address from the same bytes", func() {
		data := bytes.Repeat([]byte("digital rights "), 1024)

		first, err := ipfs.SumCid(data)
		Expect(err).NotTo(HaveOccurred())
		second, err := ipfs.SumCid(data)
		Expect(err).NotTo(HaveOccurred())

		Expect(first.Defined()).To(BeTrue())
		Expect(first.Version()).To(Equal(uint64(1)))
		Expect(first.String()).To(Equal(second.String()))
	})

	It("should derive different addresses from different bytes", func() {
		first, err := ipfs.SumCid(bytes.Repeat([]byte("a"), 64))
		Expect(err).NotTo(HaveOccurred())
		second, err := ipfs.SumCid(bytes.Repeat([]byte("b"), 64))
		Expect(err).NotTo(HaveOccurred())

		Expect(first.String()).NotTo(Equal(second.String()))
	})

	It("should handle payloads larger than one chunk", func() {
		data := bytes.Repeat([]byte("x"), 3*1024*1024)

		sum, err := ipfs.SumCid(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(sum.Defined()).To(BeTrue())
		Expect(sum.Version()).To(Equal(uint64(1)))
	})
})
