package fund

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// EncodeTransaction writes a single journal entry as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode %s entry: %w", tx.What(), err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes the whole journal in canonical JSONL form.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.entries {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL journal and replays every command through the
// ledger's own operations, so a decoded ledger has re-validated every
// invariant. The first line must be the init entry; a journal that replays
// with an error is rejected.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	scanner := bufio.NewScanner(r)

	var ledger *Ledger
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}

		tx, err := decodeTransaction(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if ledger == nil {
			init, ok := tx.(Init)
			if !ok {
				return nil, fmt.Errorf("line %d: journal must start with an %q entry, got %q", line, CmdInit, tx.What())
			}
			ledger, err = build(init.Config())
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			ledger.entries = append(ledger.entries, init)
			continue
		}

		if err := ledger.replay(tx); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, fmt.Errorf("empty journal: missing %q entry", CmdInit)
	}
	return ledger, nil
}

// decodeTransaction decodes one journal line into its concrete entry type.
func decodeTransaction(lineBytes []byte) (Transaction, error) {
	var identifier struct {
		Command CommandType `json:"command"`
	}
	if err := json.Unmarshal(lineBytes, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
	}

	var err error
	var tx Transaction
	switch identifier.Command {
	case CmdInit:
		var t Init
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	case CmdAddInvestor:
		var t AddInvestor
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	case CmdAddManager:
		var t AddManager
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	case CmdDeposit:
		var t Deposit
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	case CmdSubmit:
		var t Submit
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	case CmdApprove:
		var t Approve
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	case CmdReceive:
		var t Receive
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	case CmdDistribute:
		var t Distribute
		err = json.Unmarshal(lineBytes, &t)
		tx = t
	default:
		return nil, fmt.Errorf("unknown command %q", identifier.Command)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode %q entry: %w", identifier.Command, err)
	}
	return tx, nil
}

// replay applies a decoded entry through the same mutators as the public
// operations and records it with its original date.
func (l *Ledger) replay(tx Transaction) error {
	var err error
	switch t := tx.(type) {
	case AddInvestor:
		err = l.addInvestor(t.By(), t.ID, t.Nickname, t.Rate)
	case AddManager:
		err = l.addManager(t.By(), t.ID, t.Nickname, t.Rate)
	case Deposit:
		err = l.deposit(t.By(), A(t.Amount, l.config.Currency))
	case Submit:
		_, err = l.submitProposal(t.By(), t.Description, A(t.RequiredFunds, l.config.Currency))
	case Approve:
		_, err = l.approveProposal(t.By(), t.Proposal)
	case Receive:
		err = l.receiveRevenue(t.By(), t.Proposal, A(t.Amount, l.config.Currency))
	case Distribute:
		_, err = l.distributeRevenue(t.By(), t.Proposal)
	case Init:
		err = fmt.Errorf("unexpected second %q entry", CmdInit)
	default:
		err = fmt.Errorf("unsupported entry type %T", tx)
	}
	if err != nil {
		return fmt.Errorf("invalid %s entry on %v: %w", tx.What(), tx.When(), err)
	}
	l.entries = append(l.entries, tx)
	return nil
}
