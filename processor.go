package iso8583

import (
	"context"
	"log/slog"
	"sync"
)

// Processor provides high-level concurrent parsing for ISO 8583 messages
// against a single CompiledPackager. ProcessorOption, WithConcurrency, and
// WithErrorHandler are declared in options.go alongside the other
// functional-option families.
type Processor struct {
	packager     *CompiledPackager
	concurrency  int
	errorHandler func(error)
}

// NewProcessor creates a new Processor bound to packager.
func NewProcessor(packager *CompiledPackager, opts ...ProcessorOption) *Processor {
	p := &Processor{
		packager:    packager,
		concurrency: 4,
		errorHandler: func(err error) {
			slog.Warn("processor: message parse failed", "error", err)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process parses a single raw message against the processor's packager.
// The caller owns the returned Message and must call Release when done.
func (p *Processor) Process(data []byte) (*Message, error) {
	return p.packager.Parse(data)
}

// ProcessBatch parses a slice of raw messages concurrently, bounded by
// p.concurrency goroutines at a time. The result slice is index-aligned
// with dataSlice; a failed entry leaves its slot nil and the error
// surfaces through errorHandler, not via the return value, so one bad
// message in a batch never discards results for the rest.
func (p *Processor) ProcessBatch(ctx context.Context, dataSlice [][]byte) ([]*Message, error) {
	results := make([]*Message, len(dataSlice))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.concurrency)

	for i, data := range dataSlice {
		select {
		case <-ctx.Done():
			wg.Wait()
			return results, ctx.Err()
		default:
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, msgData []byte) {
			defer wg.Done()
			defer func() { <-semaphore }()

			msg, err := p.packager.Parse(msgData)
			if err != nil {
				if p.errorHandler != nil {
					p.errorHandler(err)
				}
				return
			}
			results[idx] = msg
		}(i, data)
	}

	wg.Wait()
	return results, nil
}

// ProcessStream concurrently parses messages from an input channel and
// sends the parsed *Message values to output, stopping when input closes
// or ctx is cancelled.
func (p *Processor) ProcessStream(ctx context.Context, input <-chan []byte, output chan<- *Message) error {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.concurrency)

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()

		case data, ok := <-input:
			if !ok {
				wg.Wait()
				return nil
			}

			wg.Add(1)
			semaphore <- struct{}{}

			go func(msgData []byte) {
				defer wg.Done()
				defer func() { <-semaphore }()

				msg, err := p.packager.Parse(msgData)
				if err != nil {
					if p.errorHandler != nil {
						p.errorHandler(err)
					}
					return
				}

				select {
				case output <- msg:
				case <-ctx.Done():
					msg.Release()
				}
			}(data)
		}
	}
}
