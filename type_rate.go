package fund

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rate is an integer percentage. Profit-sharing rates and the approval
// threshold are whole percents, fixed at creation.
type Rate int

// OwnerProfitRate is the distinguished rate of the Owner's implicit
// investor record. It deliberately exceeds 100: it is a structural
// constant of the pool, not a registered investor's share.
const OwnerProfitRate Rate = 110

func (r Rate) String() string { return fmt.Sprintf("%d%%", int(r)) }

// Decimal returns the rate as an exact decimal percentage value.
func (r Rate) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(r)) }

// IsValidShare reports whether r can be used as a pool share threshold.
func (r Rate) IsValidShare() bool { return r >= 0 && r <= 100 }

// ApplyFloor computes a*r/100 with the quotient floored, in smallest units.
func (r Rate) ApplyFloor(a Amount) Amount {
	product := a.Decimal().Mul(r.Decimal())
	q, _ := product.QuoRem(decimal.NewFromInt(100), 0)
	return A(q.IntPart(), a.Currency())
}
