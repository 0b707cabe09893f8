// Package broadcaster generates a transaction over JSON-RPC and fetches
// the generated transaction by its request id.
package broadcaster

import (
	"context"
	"errors"
	"time"

	"aleo-broadcaster/auth"
	"aleo-broadcaster/models"
	"aleo-broadcaster/program"
	"aleo-broadcaster/util/log"
	"aleo-broadcaster/util/timeutil"

	"github.com/avast/retry-go/v4"
)

// DefaultPollDelay is the wait between submission and the poll call.
const DefaultPollDelay = 10 * time.Second

// Transactor is the JSON-RPC side of the flow.
type Transactor interface {
	GenerateTransaction(params models.GenerateTransactionParams) (string, error)
	GetGeneratedTransaction(requestID string) (string, error)
}

// Client is implemented by rpc.Client.
type Client interface {
	program.Fetcher
	Transactor
}

// Result records a broadcast run.
type Result struct {
	State            State
	GenerateResponse string
	RequestID        string
	PollResponse     string

	// ExtractErr is set when the run ended in DoneNoPoll.
	ExtractErr error
}

// Broadcaster drives resolve, submit and poll.
type Broadcaster struct {
	client       Client
	pollDelay    time.Duration
	pollAttempts uint

	state State
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithPollDelay sets the wait before the first poll and between polls.
func WithPollDelay(d time.Duration) Option {
	return func(b *Broadcaster) {
		b.pollDelay = d
	}
}

// WithPollAttempts sets how many getGeneratedTransaction calls are made at most.
func WithPollAttempts(n uint) Option {
	return func(b *Broadcaster) {
		if n > 0 {
			b.pollAttempts = n
		}
	}
}

// New creates a Broadcaster polling once after DefaultPollDelay.
func New(client Client, opts ...Option) *Broadcaster {
	b := &Broadcaster{
		client:       client,
		pollDelay:    DefaultPollDelay,
		pollAttempts: 1,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

func (b *Broadcaster) transit(s State) {
	log.Debugf("broadcaster: %s -> %s", b.state, s)
	b.state = s
}

// Broadcast resolves the program, submits generateTransaction and, if a
// request id comes back, waits and polls getGeneratedTransaction. Transport
// errors are returned; a response without a request id is not an error and
// ends the run in DoneNoPoll.
func (b *Broadcaster) Broadcast(ctx context.Context, programName, function string, payload auth.Payload) (*Result, error) {
	b.state = Idle
	result := &Result{}
	defer func() { result.State = b.state }()

	b.transit(Resolving)
	prog, imports, err := program.Resolve(b.client, programName)
	if err != nil {
		return result, err
	}

	authorization, err := payload.Authorization()
	if err != nil {
		return result, err
	}

	feeAuthorization, err := payload.FeeAuthorization()
	if err != nil {
		return result, err
	}

	b.transit(Submitting)
	log.Info(">>> Generating transaction...")
	resp, err := b.client.GenerateTransaction(models.GenerateTransactionParams{
		Authorization:    authorization,
		Program:          prog.Source,
		FeeAuthorization: feeAuthorization,
		Function:         function,
		Broadcast:        true,
		Imports:          imports,
	})
	if err != nil {
		return result, err
	}
	log.Infof("Response: %s", resp)
	result.GenerateResponse = resp

	requestID, err := extractRequestID(resp)
	if err != nil {
		result.ExtractErr = err
		b.transit(DoneNoPoll)
		log.Warnf("Could not extract request_id automatically. Error: %v", err)
		log.Warn("Please provide the request_id manually for fetching transaction.")
		return result, nil
	}
	result.RequestID = requestID

	b.transit(Polling)
	result.PollResponse, err = b.poll(ctx, requestID)
	if err != nil {
		return result, err
	}

	b.transit(Done)
	return result, nil
}

// poll waits pollDelay, then calls getGeneratedTransaction up to
// pollAttempts times while the response has no result.
func (b *Broadcaster) poll(ctx context.Context, requestID string) (string, error) {
	log.Infof("Waiting %s before fetching the generated transaction", timeutil.ParseDuration(b.pollDelay))

	if err := sleep(ctx, b.pollDelay); err != nil {
		return "", err
	}

	var last string
	attempt := 0
	err := retry.Do(
		func() error {
			attempt++
			log.Infof(">>> Fetching transaction with request_id %s...", requestID)

			resp, err := b.client.GetGeneratedTransaction(requestID)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			log.Infof("Response: %s", resp)
			last = resp

			if !ready(resp) {
				return errNotReady
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(b.pollAttempts),
		retry.Delay(b.pollDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)

	if errors.Is(err, errNotReady) {
		if b.pollAttempts > 1 {
			log.Warnf("Transaction %s still not generated after %d attempts", requestID, attempt)
		}
		return last, nil
	}

	return last, err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
