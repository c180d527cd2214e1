package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/watchfi/backend/internal/domain"
)

// Processor verifies transactions against a Solana JSON-RPC node.
type Processor struct {
	rpcURL     string
	httpClient *http.Client
}

func NewProcessor(rpcURL string) *Processor {
	return &Processor{rpcURL: rpcURL, httpClient: &http.Client{Timeout: 15 * time.Second}}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type signatureStatusesResp struct {
	Result struct {
		Value []*struct {
			Confirmations      *int   `json:"confirmations"`
			ConfirmationStatus string `json:"confirmationStatus"`
			Err                any    `json:"err"`
		} `json:"value"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

type transactionResp struct {
	Result *struct {
		BlockTime *int64 `json:"blockTime"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

func (p *Processor) call(ctx context.Context, method string, params []any, out any) error {
	buf, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.rpcURL, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("solana rpc: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("solana rpc status %d: %s", res.StatusCode, string(body))
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Verify reports the on-chain status of a transaction signature. An unknown
// signature is not an error: it comes back unconfirmed with zero
// confirmations, and the caller decides what to do with it.
func (p *Processor) Verify(ctx context.Context, transactionHash string, network domain.PaymentType) (domain.PaymentVerification, error) {
	var v domain.PaymentVerification

	var statuses signatureStatusesResp
	err := p.call(ctx, "getSignatureStatuses",
		[]any{[]string{transactionHash}, map[string]bool{"searchTransactionHistory": true}},
		&statuses)
	if err != nil {
		return v, err
	}
	if statuses.Error != nil {
		return v, fmt.Errorf("solana rpc: %s", statuses.Error.Message)
	}
	if len(statuses.Result.Value) == 0 || statuses.Result.Value[0] == nil {
		return v, nil
	}

	st := statuses.Result.Value[0]
	if st.Err != nil {
		return v, nil
	}
	switch st.ConfirmationStatus {
	case "finalized":
		v.Confirmed = true
		// A finalized transaction has no live confirmation count.
		v.Confirmations = 32
	case "confirmed":
		v.Confirmed = true
	}
	if st.Confirmations != nil {
		v.Confirmations = *st.Confirmations
	}

	if v.Confirmed {
		var tx transactionResp
		err := p.call(ctx, "getTransaction",
			[]any{transactionHash, map[string]any{"encoding": "json", "maxSupportedTransactionVersion": 0}},
			&tx)
		if err == nil && tx.Error == nil && tx.Result != nil && tx.Result.BlockTime != nil {
			t := time.Unix(*tx.Result.BlockTime, 0).UTC()
			v.BlockTime = &t
		}
	}
	return v, nil
}
