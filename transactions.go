package fund

// CommandType is a typed string identifying journal commands.
type CommandType string

// Command types used for identifying journal entries.
const (
	CmdInit        CommandType = "init"
	CmdAddInvestor CommandType = "add-investor"
	CmdAddManager  CommandType = "add-manager"
	CmdDeposit     CommandType = "deposit"
	CmdSubmit      CommandType = "submit"
	CmdApprove     CommandType = "approve"
	CmdReceive     CommandType = "receive"
	CmdDistribute  CommandType = "distribute"
)

// Transaction is the common interface of all journal entries. The journal
// is strictly append-ordered: order is semantic (proposal indices, voting
// order), entries are never re-sorted.
type Transaction interface {
	What() CommandType // the command type of the entry
	When() Date        // the day the operation was recorded
	By() Identity      // the authenticated caller identity
}

type baseCmd struct {
	Command CommandType `json:"command"`
	Date    Date        `json:"date"`
	From    Identity    `json:"from,omitempty"` // empty only for init
}

func (t baseCmd) What() CommandType { return t.Command }
func (t baseCmd) When() Date        { return t.Date }
func (t baseCmd) By() Identity      { return t.From }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("from", t.From)
	return w.MarshalJSON()
}

// Init is the construction entry, always the first line of a journal.
type Init struct {
	baseCmd
	Owner         Identity `json:"owner"`
	OwnerNickname string   `json:"ownerNickname"`
	Threshold     Rate     `json:"approveShareThreshold"`
	Currency      string   `json:"currency"`
}

// NewInit creates the construction entry from the pool configuration.
func NewInit(day Date, cfg Config) Init {
	return Init{
		baseCmd:       baseCmd{Command: CmdInit, Date: day},
		Owner:         cfg.Owner,
		OwnerNickname: cfg.OwnerNickname,
		Threshold:     cfg.ApproveShareThreshold,
		Currency:      cfg.Currency,
	}
}

// Config returns the pool configuration carried by the entry.
func (t Init) Config() Config {
	return Config{
		Owner:                 t.Owner,
		OwnerNickname:         t.OwnerNickname,
		ApproveShareThreshold: t.Threshold,
		Currency:              t.Currency,
	}
}

// MarshalJSON implements the json.Marshaler interface for Init.
func (t Init) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("owner", t.Owner)
	w.Append("ownerNickname", t.OwnerNickname)
	w.Append("approveShareThreshold", t.Threshold)
	w.Append("currency", t.Currency)
	return w.MarshalJSON()
}

// registerCmd is the common shape of add-investor and add-manager.
type registerCmd struct {
	baseCmd
	ID       Identity `json:"id"`
	Nickname string   `json:"nickname"`
	Rate     Rate     `json:"profitRate"`
}

// MarshalJSON implements the json.Marshaler interface for registerCmd.
func (t registerCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("id", t.ID)
	w.Append("nickname", t.Nickname)
	w.Append("profitRate", t.Rate)
	return w.MarshalJSON()
}

// AddInvestor registers an investor identity.
type AddInvestor struct{ registerCmd }

// NewAddInvestor creates a new AddInvestor entry.
func NewAddInvestor(day Date, from, id Identity, nickname string, rate Rate) AddInvestor {
	return AddInvestor{registerCmd{
		baseCmd:  baseCmd{Command: CmdAddInvestor, Date: day, From: from},
		ID:       id,
		Nickname: nickname,
		Rate:     rate,
	}}
}

// AddManager registers a manager identity.
type AddManager struct{ registerCmd }

// NewAddManager creates a new AddManager entry.
func NewAddManager(day Date, from, id Identity, nickname string, rate Rate) AddManager {
	return AddManager{registerCmd{
		baseCmd:  baseCmd{Command: CmdAddManager, Date: day, From: from},
		ID:       id,
		Nickname: nickname,
		Rate:     rate,
	}}
}

// Deposit adds capital to the pool from an investor.
type Deposit struct {
	baseCmd
	Amount int64 `json:"amount"` // smallest currency units
}

// NewDeposit creates a new Deposit entry.
func NewDeposit(day Date, from Identity, amount Amount) Deposit {
	return Deposit{
		baseCmd: baseCmd{Command: CmdDeposit, Date: day, From: from},
		Amount:  amount.Units(),
	}
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Submit appends a funding proposal from a manager.
type Submit struct {
	baseCmd
	Description   string `json:"description"`
	RequiredFunds int64  `json:"requiredFunds"`
}

// NewSubmit creates a new Submit entry.
func NewSubmit(day Date, from Identity, description string, required Amount) Submit {
	return Submit{
		baseCmd:       baseCmd{Command: CmdSubmit, Date: day, From: from},
		Description:   description,
		RequiredFunds: required.Units(),
	}
}

// MarshalJSON implements the json.Marshaler interface for Submit.
func (t Submit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("description", t.Description)
	w.Append("requiredFunds", t.RequiredFunds)
	return w.MarshalJSON()
}

// Approve records an investor's yes vote on a proposal.
type Approve struct {
	baseCmd
	Proposal int `json:"proposal"`
}

// NewApprove creates a new Approve entry.
func NewApprove(day Date, from Identity, proposal int) Approve {
	return Approve{
		baseCmd:  baseCmd{Command: CmdApprove, Date: day, From: from},
		Proposal: proposal,
	}
}

// MarshalJSON implements the json.Marshaler interface for Approve.
func (t Approve) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("proposal", t.Proposal)
	return w.MarshalJSON()
}

// Receive records revenue paid in by a proposal's manager.
type Receive struct {
	baseCmd
	Proposal int   `json:"proposal"`
	Amount   int64 `json:"amount"`
}

// NewReceive creates a new Receive entry.
func NewReceive(day Date, from Identity, proposal int, amount Amount) Receive {
	return Receive{
		baseCmd:  baseCmd{Command: CmdReceive, Date: day, From: from},
		Proposal: proposal,
		Amount:   amount.Units(),
	}
}

// MarshalJSON implements the json.Marshaler interface for Receive.
func (t Receive) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("proposal", t.Proposal)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Distribute settles the undistributed revenue of a proposal.
type Distribute struct {
	baseCmd
	Proposal int `json:"proposal"`
}

// NewDistribute creates a new Distribute entry.
func NewDistribute(day Date, from Identity, proposal int) Distribute {
	return Distribute{
		baseCmd:  baseCmd{Command: CmdDistribute, Date: day, From: from},
		Proposal: proposal,
	}
}

// MarshalJSON implements the json.Marshaler interface for Distribute.
func (t Distribute) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("proposal", t.Proposal)
	return w.MarshalJSON()
}
