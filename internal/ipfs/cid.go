package ipfs

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/ipfs/go-blockservice"
	"github.com/ipfs/go-cid"
	"github.com/ipfs/go-cidutil"
	"github.com/ipfs/go-merkledag"

	chunker "github.com/ipfs/go-ipfs-chunker"
	ipld "github.com/ipfs/go-ipld-format"

	"github.com/ipfs/go-unixfs/importer/balanced"
	helper "github.com/ipfs/go-unixfs/importer/helpers"
	mh "github.com/multiformats/go-multihash"

	ds "github.com/ipfs/go-datastore"
	ds_sync "github.com/ipfs/go-datastore/sync"
	bstore "github.com/ipfs/go-ipfs-blockstore"
)

const chunkSize = 1024 * 1024

// Fingerprint returns the hex-encoded sha256 digest of data. Any party
// holding the same bytes derives the same fingerprint.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SumCid computes the CIDv1 the storage network assigns to data when added
// as a single raw-leaf file, without touching the network. The result is
// reproducible from the bytes alone.
func SumCid(data []byte) (cid.Cid, error) {
	nd, err := buildDag(bytes.NewReader(data))
	if err != nil {
		return cid.Undef, fmt.Errorf("build unixfs dag: %w", err)
	}
	return nd.Cid(), nil
}

func buildDag(content io.Reader) (ipld.Node, error) {
	blocks := bstore.NewBlockstore(ds_sync.MutexWrap(ds.NewMapDatastore()))
	bserv := blockservice.New(blocks, nil)
	dserv := merkledag.NewDAGService(bserv)

	prefix, err := merkledag.PrefixForCidVersion(1)
	if err != nil {
		return nil, err
	}
	prefix.MhType = uint64(mh.SHA2_256)

	spl := chunker.NewSizeSplitter(content, chunkSize)
	dbp := helper.DagBuilderParams{
		Maxlinks:  1024,
		RawLeaves: true,
		CidBuilder: cidutil.InlineBuilder{
			Builder: prefix,
			Limit:   32,
		},
		Dagserv: dserv,
	}
	db, err := dbp.New(spl)
	if err != nil {
		return nil, err
	}
	return balanced.Layout(db)
}
