package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"upiscan/internal/config"
	"upiscan/internal/dialer"
	"upiscan/internal/domain"
	"upiscan/internal/port"
	"upiscan/internal/upi"
)

// ImageScanInput is the DTO for scanning an uploaded QR image.
type ImageScanInput struct {
	File io.Reader
	// Size is the declared size in bytes, or 0 when unknown.
	Size int64
}

// ScanService defines the scan contract shared by the CLI and the HTTP API.
type ScanService interface {
	Extract(ctx context.Context, payload string) (*domain.Extraction, error)
	Scan(ctx context.Context, payload string) (*domain.ScanResult, error)
	ScanImage(ctx context.Context, input ImageScanInput) (*domain.ScanResult, error)
	ExtractBatch(ctx context.Context, payloads []string) ([]domain.BatchItem, error)
	Inspect(ctx context.Context, payload string) (*domain.Inspection, error)
}

type scanService struct {
	decoder   port.BarcodeDecoder
	clipboard port.ClipboardSink
	dialer    port.Dialer
	cfg       *config.ScanConfig
	now       func() time.Time
}

// NewScanService creates a new ScanService implementation. A nil clipboard
// skips copying.
func NewScanService(
	decoder port.BarcodeDecoder,
	clipboard port.ClipboardSink,
	dialer port.Dialer,
	cfg *config.ScanConfig,
) ScanService {
	return &scanService{
		decoder:   decoder,
		clipboard: clipboard,
		dialer:    dialer,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (s *scanService) Extract(ctx context.Context, payload string) (*domain.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	addr, kind, err := upi.ExtractPayeeAddress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidQR, err)
	}
	if strings.TrimSpace(addr.String()) == "" {
		return nil, fmt.Errorf("%w: blank payee address", domain.ErrInvalidQR)
	}

	return &domain.Extraction{
		Kind:         domain.PayloadKind(kind),
		PayeeAddress: addr.String(),
	}, nil
}

// Scan extracts the payee address, copies it to the clipboard and, when
// enabled, hands the USSD dial URI to the dialer. Clipboard and dialer
// failures are recorded on the result rather than returned.
func (s *scanService) Scan(ctx context.Context, payload string) (*domain.ScanResult, error) {
	ext, err := s.Extract(ctx, payload)
	if err != nil {
		log.Printf("scanService.Scan: rejected %s payload: %v", upi.Classify(payload), err)
		return nil, err
	}

	result := &domain.ScanResult{
		ID:           uuid.New(),
		Kind:         ext.Kind,
		PayeeAddress: ext.PayeeAddress,
		ScannedAt:    s.now().UTC(),
	}

	log.Printf("scanService.Scan: scan %s found %s payee %s", result.ID, result.Kind, result.PayeeAddress)

	if s.clipboard != nil {
		if err := s.clipboard.Copy(ctx, s.cfg.ClipboardLabel, result.PayeeAddress); err != nil {
			log.Printf("scanService.Scan: clipboard copy failed for scan %s: %v", result.ID, err)
		} else {
			result.Copied = true
		}
	}

	if s.cfg.DialEnabled {
		result.DialURI = dialer.BuildURI(s.cfg.USSDCode)
		if err := s.dialer.Dial(ctx, result.DialURI); err != nil {
			log.Printf("scanService.Scan: dial failed for scan %s: %v", result.ID, err)
			result.DialError = "failed to call USSD"
		} else {
			result.Dialed = true
		}
	}

	return result, nil
}

func (s *scanService) ScanImage(ctx context.Context, input ImageScanInput) (*domain.ScanResult, error) {
	maxBytes := s.cfg.MaxImageBytes()
	if input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.File, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	detectedType := http.DetectContentType(data)
	if _, ok := domain.AllowedContentTypes[detectedType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	text, err := s.decoder.Decode(ctx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Printf("scanService.ScanImage: no QR code in %s image (%d bytes): %v", detectedType, len(data), err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNoQRCode, err)
	}

	return s.Scan(ctx, text)
}

// ExtractBatch extracts every payload with at most cfg.BatchConcurrency
// extractions in flight. Items keep input order. Once ctx is done the
// remaining items carry the context error.
func (s *scanService) ExtractBatch(ctx context.Context, payloads []string) ([]domain.BatchItem, error) {
	if len(payloads) > s.cfg.BatchMaxItems {
		return nil, domain.ErrBatchTooLarge
	}

	items := make([]domain.BatchItem, len(payloads))
	sem := make(chan struct{}, s.cfg.BatchConcurrency)
	var wg sync.WaitGroup

	for i, payload := range payloads {
		items[i] = domain.BatchItem{
			Index:   i,
			Payload: payload,
			Kind:    domain.PayloadKind(upi.Classify(payload)),
		}

		select {
		case <-ctx.Done():
			items[i].Error = ctx.Err().Error()
			continue
		case sem <- struct{}{}: // acquire
		}

		wg.Add(1)
		go func(item *domain.BatchItem) {
			defer wg.Done()
			defer func() { <-sem }() // release

			ext, err := s.Extract(ctx, item.Payload)
			if err != nil {
				item.Error = err.Error()
				return
			}
			item.PayeeAddress = ext.PayeeAddress
		}(&items[i])
	}

	wg.Wait()

	found := 0
	for i := range items {
		if items[i].OK() {
			found++
		}
	}
	log.Printf("scanService.ExtractBatch: %d of %d payloads yielded a payee address", found, len(items))

	return items, nil
}

func (s *scanService) Inspect(ctx context.Context, payload string) (*domain.Inspection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := upi.Classify(payload)
	if kind == upi.KindURL {
		return nil, fmt.Errorf("%w: url payloads carry no TLV fields", domain.ErrInvalidQR)
	}

	fields, err := upi.ParseFields(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidQR, err)
	}

	inspection := &domain.Inspection{
		Kind:   domain.PayloadKind(kind),
		Fields: toDomainFields(fields),
	}

	sub, err := upi.MerchantAccountInfo(fields)
	switch {
	case err == nil:
		inspection.MerchantAccount = toDomainFields(sub)
	case errors.Is(err, upi.ErrMalformedLength), errors.Is(err, upi.ErrLengthOverrun):
		return nil, fmt.Errorf("%w: merchant account template: %w", domain.ErrInvalidQR, err)
	}

	return inspection, nil
}

func toDomainFields(fields []upi.Field) []domain.TLVField {
	out := make([]domain.TLVField, 0, len(fields))
	for _, f := range fields {
		out = append(out, domain.TLVField{Tag: f.Tag, Length: f.Length, Value: f.Value})
	}
	return out
}
