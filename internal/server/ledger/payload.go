package ledger

import (
	"github.com/dmitrijs2005/blindledger/internal/gateway"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
)

// Cleartext layouts, one 32-byte ABI word per value:
//
//	proposal: salary uint32, bonus uint32
//	tally:    yes uint64, no uint64
type proposalReveal struct {
	Salary uint32
	Bonus  uint32
}

type tallyReveal struct {
	Yes uint64
	No  uint64
}

func decodeProposal(cleartext []byte) (proposalReveal, error) {
	w, err := gateway.DecodeWords(cleartext, 2, 32)
	if err != nil {
		return proposalReveal{}, err
	}
	return proposalReveal{Salary: uint32(w[0]), Bonus: uint32(w[1])}, nil
}

func decodeTally(cleartext []byte) (tallyReveal, error) {
	w, err := gateway.DecodeWords(cleartext, 2, 64)
	if err != nil {
		return tallyReveal{}, err
	}
	return tallyReveal{Yes: w[0], No: w[1]}, nil
}

func (t tallyReveal) outcome() models.Outcome {
	switch {
	case t.Yes > t.No:
		return models.OutcomeYes
	case t.No > t.Yes:
		return models.OutcomeNo
	default:
		return models.OutcomeTie
	}
}
