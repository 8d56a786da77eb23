package governance

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Proposal is the batch a governor submits to the timelock: parallel arrays
// of targets, values, signatures and argument encodings.
type Proposal struct {
	Targets    []common.Address `json:"targets"`
	Values     []string         `json:"values"`
	Signatures []string         `json:"signatures"`
	Calldatas  []hexutil.Bytes  `json:"calldatas"`
	Meta       string           `json:"meta,omitempty"`
}

// BuildProposal encodes commands, preserving their order.
func BuildProposal(commands []Command, meta string) (*Proposal, error) {
	p := &Proposal{
		Targets:    make([]common.Address, 0, len(commands)),
		Values:     make([]string, 0, len(commands)),
		Signatures: make([]string, 0, len(commands)),
		Calldatas:  make([]hexutil.Bytes, 0, len(commands)),
		Meta:       meta,
	}
	for i, cmd := range commands {
		encoded, err := EncodeArguments(cmd)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		p.Targets = append(p.Targets, cmd.Target())
		p.Values = append(p.Values, cmd.Value().String())
		p.Signatures = append(p.Signatures, cmd.Signature())
		p.Calldatas = append(p.Calldatas, encoded)
	}
	return p, nil
}

// Len returns the number of calls in the proposal.
func (p *Proposal) Len() int { return len(p.Targets) }
