package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/sheikhfi/fund"
	"github.com/sheikhfi/fund/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a participant of a pooled investment fund: an owner, an investor or a manager.
			He is here primarily to understand the state of the pool, his stake, the pending
			proposals and how revenue gets distributed.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request.

			The user will assume that you checked the fund's journal first and know about his pool.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert grounding answers in public market and
// business information.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert business analyst,
		very well aware of markets, companies and business ventures,
		and of the latest news about them.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in business analysis, you can search and find about anything related to
			companies, markets and business ventures. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of reading the fund's journal.
func NewBookkeeper() *Expert {

	lib := []Function{PoolStatus, JournalLog}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the fund's journal.
		He can report the pool totals, the investors and their stakes, the managers,
		the proposals and the full history of operations.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the fund's journal.
				You know how to use the Tools to extract relevant information about the pool.
				You are part of a team of experts, yours is everything about the fund's journal.
				They might ask you questions about the pool, pardon their approximative
				language and figure out what they meant.

				Use the available tools to get information about the pool
				  - the pool status: totals, investors, managers and proposals
				  - the journal: the full history of operations
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// PoolStatus reports the current state of the pool as markdown.
var PoolStatus = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "PoolStatus",
		Description: `PoolStatus reports the current state of the pool: the owner, the totals,
		each investor with his stake and profit, each manager, and each proposal with its status.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted report of the pool state.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		l, err := decodeLedger()
		if err != nil {
			return errResponse(id, "PoolStatus", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "PoolStatus",
			Response: map[string]any{
				"output": renderer.Status(l.Snapshot()),
			},
		}
	},
}

// JournalLog reports the full history of operations as markdown.
var JournalLog = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "JournalLog",
		Description: `JournalLog lists every operation recorded in the fund's journal in order:
		registrations, deposits, proposals, votes, revenue and distributions.`,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of all journal entries.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		l, err := decodeLedger()
		if err != nil {
			return errResponse(id, "JournalLog", err)
		}
		var entries []fund.Transaction
		for _, tx := range l.Journal() {
			entries = append(entries, tx)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "JournalLog",
			Response: map[string]any{
				"output": renderer.Log(entries, l.Config().Currency),
			},
		}
	},
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// decodeLedger loads the journal from the application's default journal file.
func decodeLedger() (*fund.Ledger, error) {
	journalFile := os.Getenv("SFI_JOURNAL")
	if journalFile == "" {
		journalFile = "fund.jsonl"
	}
	f, err := os.Open(journalFile)
	if err != nil {
		return nil, fmt.Errorf("could not open journal file %q: %w", journalFile, err)
	}
	defer f.Close()

	l, err := fund.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode journal file %q: %w", journalFile, err)
	}
	return l, nil
}
