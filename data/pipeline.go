package data

import (
	"fmt"

	"github.com/crossledger/xrpl-tools/crypto"
	"github.com/crossledger/xrpl-tools/log"
)

// PipelineState tracks a transaction through signing.
type PipelineState int

const (
	Unsigned PipelineState = iota
	Serializing
	Signed
	Finalized
	Failed
)

func (s PipelineState) String() string {
	switch s {
	case Unsigned:
		return "unsigned"
	case Serializing:
		return "serializing"
	case Signed:
		return "signed"
	case Finalized:
		return "finalized"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Pipeline drives one transaction object through
// unsigned → serializing → signed → finalized. Any codec or signing
// failure moves it to the terminal failed state with the originating
// error preserved. A pipeline is single use and not shared between
// goroutines; independent pipelines need no coordination.
type Pipeline struct {
	obj         TxObject
	state       PipelineState
	err         error
	signingHash Hash256
	blob        []byte
	hash        Hash256
}

// NewPipeline wraps an unsigned transaction object. The object must not
// already carry signature fields.
func NewPipeline(o TxObject) (*Pipeline, error) {
	if o.Has("TxnSignature") {
		return nil, fmt.Errorf("transaction is already signed")
	}
	return &Pipeline{obj: o, state: Unsigned}, nil
}

func (p *Pipeline) fail(err error) error {
	p.state = Failed
	p.err = err
	return err
}

// Sign runs the whole pipeline: serialize unsigned, sign, inject the
// signature fields, re-serialize and compute the transaction hash.
func (p *Pipeline) Sign(key crypto.Key, sequence *uint32) error {
	if p.state != Unsigned {
		return fmt.Errorf("cannot sign transaction in state %s", p.state)
	}
	p.state = Serializing
	hash, _, err := SigningHash(p.obj)
	if err != nil {
		return p.fail(fmt.Errorf("serialize unsigned transaction: %w", err))
	}
	p.signingHash = hash
	if err := Sign(p.obj, key, sequence); err != nil {
		return p.fail(fmt.Errorf("sign transaction: %w", err))
	}
	p.state = Signed
	txid, blob, err := Raw(p.obj)
	if err != nil {
		return p.fail(fmt.Errorf("serialize signed transaction: %w", err))
	}
	p.blob = blob
	p.hash = txid
	p.state = Finalized
	log.Debug("transaction signed", "hash", txid.String(), "keyType", key.Type().String(), "size", len(blob))
	return nil
}

// State returns the pipeline's current state.
func (p *Pipeline) State() PipelineState {
	return p.state
}

// Err returns the error that moved the pipeline to the failed state.
func (p *Pipeline) Err() error {
	return p.err
}

// SigningHash returns the hash the signature was computed over.
func (p *Pipeline) SigningHash() Hash256 {
	return p.signingHash
}

// Blob returns the submittable signed bytes. Only valid once finalized.
func (p *Pipeline) Blob() ([]byte, error) {
	if p.state != Finalized {
		return nil, fmt.Errorf("no blob in state %s", p.state)
	}
	return p.blob, nil
}

// Hash returns the canonical transaction hash. Only valid once finalized.
func (p *Pipeline) Hash() (Hash256, error) {
	if p.state != Finalized {
		return zero256, fmt.Errorf("no hash in state %s", p.state)
	}
	return p.hash, nil
}
