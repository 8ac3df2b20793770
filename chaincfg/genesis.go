package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-wire"
	"github.com/lavrovcoin/lavrovd/errors"
)

const (
	// genesisCoinbaseBits is the difficulty the reference client pushes
	// into every genesis coinbase, independent of the header bits.
	genesisCoinbaseBits = 0x1d00ffff

	// genesisCoinbaseExtraNonce follows the bits in the coinbase script.
	genesisCoinbaseExtraNonce = 4
)

// GenesisSpec is everything needed to rebuild a network's first block.
type GenesisSpec struct {
	// TimestampMessage is embedded in the coinbase signature script.
	TimestampMessage string

	// RewardPubKey receives the coinbase output through a pay to pubkey
	// script.
	RewardPubKey []byte

	// Reward is the coinbase output value in satoshi.
	Reward int64

	Version   int32
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32
}

func (g GenesisSpec) clone() GenesisSpec {
	g.RewardPubKey = append([]byte(nil), g.RewardPubKey...)
	return g
}

// BuildGenesisBlock deterministically assembles the genesis block described
// by spec: one coinbase paying the reward to the public key, the merkle root
// over it and a header with a null previous block.
func BuildGenesisBlock(spec GenesisSpec) (*wire.MsgBlock, error) {
	coinbase, err := genesisCoinbaseTx(spec)
	if err != nil {
		return nil, err
	}

	version := spec.Version
	if version == 0 {
		version = 1
	}

	txs := []*wire.MsgTx{coinbase}

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: calcMerkleRoot(txs),
			Timestamp:  time.Unix(spec.Timestamp.Unix(), 0),
			Bits:       spec.Bits,
			Nonce:      spec.Nonce,
		},
		Transactions: txs,
	}, nil
}

func genesisCoinbaseTx(spec GenesisSpec) (*wire.MsgTx, error) {
	if len(spec.RewardPubKey) == 0 {
		return nil, errors.NewInvalidArgumentError("genesis reward public key is empty")
	}

	sigScript := &bscript.Script{}
	for _, data := range [][]byte{
		scriptNum(genesisCoinbaseBits),
		scriptNum(genesisCoinbaseExtraNonce),
		[]byte(spec.TimestampMessage),
	} {
		if err := sigScript.AppendPushData(data); err != nil {
			return nil, errors.NewProcessingError("failed to build genesis coinbase script", err)
		}
	}

	pkScript := &bscript.Script{}
	if err := pkScript.AppendPushData(spec.RewardPubKey); err != nil {
		return nil, errors.NewProcessingError("failed to push genesis reward key", err)
	}

	if err := pkScript.AppendOpcodes(bscript.OpCHECKSIG); err != nil {
		return nil, errors.NewProcessingError("failed to append OP_CHECKSIG", err)
	}

	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{
			{
				PreviousOutPoint: wire.OutPoint{
					Hash:  chainhash.Hash{},
					Index: 0xffffffff,
				},
				SignatureScript: []byte(*sigScript),
				Sequence:        0xffffffff,
			},
		},
		TxOut: []*wire.TxOut{
			{
				Value:    spec.Reward,
				PkScript: []byte(*pkScript),
			},
		},
		LockTime: 0,
	}, nil
}

// calcMerkleRoot hashes the transaction ids pairwise up to a single root,
// duplicating the last entry of odd sized levels. A single transaction is its
// own root.
func calcMerkleRoot(txs []*wire.MsgTx) chainhash.Hash {
	if len(txs) == 0 {
		return chainhash.Hash{}
	}

	level := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		level[i] = tx.TxHash()
	}

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		next := make([]chainhash.Hash, 0, len(level)/2)

		var buf [chainhash.HashSize * 2]byte
		for i := 0; i < len(level); i += 2 {
			copy(buf[:chainhash.HashSize], level[i][:])
			copy(buf[chainhash.HashSize:], level[i+1][:])
			next = append(next, chainhash.DoubleHashH(buf[:]))
		}

		level = next
	}

	return level[0]
}

// scriptNum returns the minimal little endian script number encoding of v.
func scriptNum(v int64) []byte {
	if v == 0 {
		return nil
	}

	negative := v < 0
	if negative {
		v = -v
	}

	var result []byte
	for v > 0 {
		result = append(result, byte(v&0xff))
		v >>= 8
	}

	// the top bit of the last byte is the sign bit
	if result[len(result)-1]&0x80 != 0 {
		extra := byte(0x00)
		if negative {
			extra = 0x80
		}

		result = append(result, extra)
	} else if negative {
		result[len(result)-1] |= 0x80
	}

	return result
}

// VerifyGenesis compares a built genesis block with the hard-coded hash and
// merkle root of network. A mismatch means the constants compiled into the
// binary disagree with each other.
func VerifyGenesis(network string, block *wire.MsgBlock, expectedHash, expectedMerkleRoot *chainhash.Hash) error {
	if block == nil {
		err := errors.NewConfigurationIntegrityError("[%s] genesis block was not built", network)
		err.SetData("network", network)

		return err
	}

	if block.Header.MerkleRoot != *expectedMerkleRoot {
		err := errors.NewConfigurationIntegrityError("[%s] genesis merkle root %s does not match expected %s",
			network, block.Header.MerkleRoot, expectedMerkleRoot)
		err.SetData("network", network)
		err.SetData("expected", expectedMerkleRoot.String())
		err.SetData("actual", block.Header.MerkleRoot.String())

		return err
	}

	hash := block.BlockHash()
	if hash != *expectedHash {
		err := errors.NewConfigurationIntegrityError("[%s] genesis hash %s does not match expected %s",
			network, hash, expectedHash)
		err.SetData("network", network)
		err.SetData("expected", expectedHash.String())
		err.SetData("actual", hash.String())

		return err
	}

	return nil
}

// mustDecodeHex decodes hard-coded hex literals and panics on malformed
// input, which can only be a typo in this package.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It panics on an error since it is only called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}

	return hash
}
