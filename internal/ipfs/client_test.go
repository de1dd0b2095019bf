package ipfs_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/0Selene/DRManagerProject-Complete/internal/ipfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PinClient", func() {
	var (
		server *httptest.Server
		client *ipfs.PinClient
		ctx    context.Context

		stagedPath string

		gotPath     string
		gotAuth     string
		gotField    string
		gotFileName string
		gotBody     []byte

		respStatus int
		respBody   any
	)

	BeforeEach(func() {
		ctx = context.Background()

		stagedPath = filepath.Join(GinkgoT().TempDir(), "staged.bin")
		Expect(os.WriteFile(stagedPath, []byte("staged bytes"), 0o600)).To(Succeed())

		respStatus = http.StatusOK
		respBody = ipfs.AddResponse{Cid: "bafkreigh2akiscaildc"}

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")

			if r.Method == http.MethodPost {
				file, header, err := r.FormFile("data")
				if err == nil {
					gotField = "data"
					gotFileName = header.Filename
					gotBody, _ = io.ReadAll(file)
					file.Close()
				}
			}

			w.WriteHeader(respStatus)
			_ = json.NewEncoder(w).Encode(respBody)
		}))

		client = ipfs.NewPinClient(server.URL, "secret-token")
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("AddFile", func() {
		When("the service accepts the file", func() {
			It("should post the staged file and return the reported address", func() {
				resp, err := client.AddFile(ctx, stagedPath, "track.mp3")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Cid).To(Equal("bafkreigh2akiscaildc"))

				Expect(gotPath).To(Equal("/content/add"))
				Expect(gotAuth).To(Equal("Bearer secret-token"))
				Expect(gotField).To(Equal("data"))
				Expect(gotFileName).To(Equal("track.mp3"))
				Expect(gotBody).To(Equal([]byte("staged bytes")))
			})
		})

		When("the service rejects the file", func() {
			BeforeEach(func() {
				respStatus = http.StatusBadGateway
				respBody = map[string]string{"error": "pin queue full"}
			})

			It("should return an error with the status", func() {
				_, err := client.AddFile(ctx, stagedPath, "track.mp3")
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("502"))
			})
		})

		When("the staged file does not exist", func() {
			It("should return an error without calling the service", func() {
				_, err := client.AddFile(ctx, filepath.Join(GinkgoT().TempDir(), "missing"), "x")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Ping", func() {
		It("should hit the health endpoint", func() {
			Expect(client.Ping(ctx)).To(Succeed())
			Expect(gotPath).To(Equal("/health"))
			Expect(gotAuth).To(Equal("Bearer secret-token"))
		})

		When("the service errors", func() {
			BeforeEach(func() {
				respStatus = http.StatusServiceUnavailable
			})

			It("should return an error", func() {
				Expect(client.Ping(ctx)).To(HaveOccurred())
			})
		})

		When("the service answers with a client error", func() {
			BeforeEach(func() {
				respStatus = http.StatusNotFound
			})

			It("should still count as reachable", func() {
				Expect(client.Ping(ctx)).To(Succeed())
			})
		})
	})
})
