// Package lookup ties the address validation, self address resolution
// and geolocation pipelines together.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/qdm12/ip-locator/internal/view"
	"github.com/qdm12/ip-locator/pkg/geolocation"
	"github.com/qdm12/ip-locator/pkg/ipaddress"
)

const (
	PipelineSelf        = "self"
	PipelineGeolocation = "geolocation"
)

type Service struct {
	resolver   SelfResolver
	geolocator Geolocator
	metrics    Metrics
	logger     Logger
	// inFlight guards the interactive flows sharing a display.
	inFlight sync.Mutex
}

func New(resolver SelfResolver, geolocator Geolocator,
	metrics Metrics, logger Logger) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		resolver:   resolver,
		geolocator: geolocator,
		metrics:    metrics,
		logger:     logger,
	}
}

// Lookup validates the input address and looks up its details.
func (s *Service) Lookup(ctx context.Context, input string) (
	record geolocation.Record, err error) {
	address := strings.TrimSpace(input)
	_, err = ipaddress.Validate(address)
	if err != nil {
		return record, err
	}

	record, err = s.geolocator.Lookup(ctx, address)
	s.metrics.LookupDone(PipelineGeolocation, err)
	if err != nil {
		return record, err
	}
	s.logger.Debug(fmt.Sprintf("looked up %s using %s", address, record.Source))
	return record, nil
}

// Self resolves the public IP address of the machine running the program.
func (s *Service) Self(ctx context.Context) (publicIP string, err error) {
	publicIP, err = s.resolver.IP(ctx)
	s.metrics.LookupDone(PipelineSelf, err)
	return publicIP, err
}

var ErrLookupInProgress = errors.New("a lookup is already in progress")

const (
	MessageInvalidAddress = "Please enter a valid IPv4 or IPv6 address."
	MessageLookingUp      = "Please wait — checking ISP and other details..."
	MessageDetecting      = "Detecting your IP..."
)

// Submit runs the lookup flow for the address entered, reporting
// progress, errors and results to the display. It returns
// ErrLookupInProgress without touching the display if another flow
// is running.
func (s *Service) Submit(ctx context.Context, input string, display Display) error {
	if !s.inFlight.TryLock() {
		return ErrLookupInProgress
	}
	defer s.inFlight.Unlock()

	display.ClearError()
	address := strings.TrimSpace(input)
	_, err := ipaddress.Validate(address)
	if err != nil {
		display.ShowError(MessageInvalidAddress)
		return err
	}

	display.ShowStatus(MessageLookingUp)
	record, err := s.Lookup(ctx, address)
	display.HideStatus()
	if err != nil {
		display.ShowError(err.Error())
		return err
	}

	display.Render(view.Project(record))
	return nil
}

// UseMyIP resolves the public IP address of the machine and
// runs the lookup flow for it.
func (s *Service) UseMyIP(ctx context.Context, display Display) error {
	if !s.inFlight.TryLock() {
		return ErrLookupInProgress
	}
	defer s.inFlight.Unlock()

	display.ClearError()
	display.ShowStatus(MessageDetecting)
	publicIP, err := s.Self(ctx)
	if err != nil {
		display.HideStatus()
		display.ShowError(err.Error())
		return err
	}
	s.logger.Info("detected public IP address " + publicIP)

	display.ShowStatus(MessageLookingUp)
	record, err := s.Lookup(ctx, publicIP)
	display.HideStatus()
	if err != nil {
		display.ShowError(err.Error())
		return err
	}

	display.Render(view.Project(record))
	return nil
}

// SubmitMultiple runs the lookup flow for several addresses at once,
// rendering each record in the order the addresses were entered.
// No lookup is done if any of the addresses is invalid.
func (s *Service) SubmitMultiple(ctx context.Context, inputs []string, display Display) error {
	if !s.inFlight.TryLock() {
		return ErrLookupInProgress
	}
	defer s.inFlight.Unlock()

	display.ClearError()
	addresses := make([]string, len(inputs))
	for i, input := range inputs {
		addresses[i] = strings.TrimSpace(input)
		_, err := ipaddress.Validate(addresses[i])
		if err != nil {
			display.ShowError(MessageInvalidAddress)
			return fmt.Errorf("%w: %s", err, addresses[i])
		}
	}

	display.ShowStatus(MessageLookingUp)
	records, err := s.geolocator.LookupMultiple(ctx, addresses)
	display.HideStatus()
	s.metrics.LookupDone(PipelineGeolocation, err)
	if err != nil {
		display.ShowError(err.Error())
		return err
	}

	for _, record := range records {
		display.Render(view.Project(record))
	}
	return nil
}
