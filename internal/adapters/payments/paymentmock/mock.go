package paymentmock

import (
	"context"

	"github.com/watchfi/backend/internal/domain"
)

// Processor stands in for the RPC verifier in development. Every transaction
// comes back unverified, so payment status falls back to what the client
// reported.
type Processor struct{}

func New() *Processor { return &Processor{} }

func (p *Processor) Verify(ctx context.Context, transactionHash string, network domain.PaymentType) (domain.PaymentVerification, error) {
	return domain.PaymentVerification{}, nil
}
