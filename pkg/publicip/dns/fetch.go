package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"
	"github.com/qdm12/ip-locator/pkg/ipaddress"
)

var (
	ErrAnswerNotReceived = errors.New("response answer not received")
	ErrAnswerTypeUnknown = errors.New("answer type is not expected")
	ErrRecordEmpty       = errors.New("record is empty")
	ErrTooManyTXTRecords = errors.New("too many TXT records")
	ErrIPMalformed       = errors.New("IP address malformed")
)

func fetch(ctx context.Context, client Client, providerData providerData) (
	publicIP string, err error) {
	message := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode: dns.OpcodeQuery,
		},
		Question: []dns.Question{
			{
				Name:   providerData.fqdn,
				Qtype:  uint16(providerData.qType),
				Qclass: uint16(providerData.class),
			},
		},
	}

	const dnsOverTLSPort = "853"
	address := net.JoinHostPort(providerData.Address, dnsOverTLSPort)
	response, _, err := client.ExchangeContext(ctx, message, address)
	if err != nil {
		return "", err
	}

	if len(response.Answer) == 0 {
		return "", fmt.Errorf("%w", ErrAnswerNotReceived)
	}

	answer := response.Answer[0]
	switch record := answer.(type) {
	case *dns.TXT:
		publicIP, err = handleTXT(record)
		if err != nil {
			return "", fmt.Errorf("handling TXT answer: %w", err)
		}
	case *dns.A:
		publicIP = record.A.String()
	case *dns.AAAA:
		publicIP = record.AAAA.String()
	default:
		return "", fmt.Errorf("%w: %T", ErrAnswerTypeUnknown, answer)
	}

	_, err = ipaddress.Validate(publicIP)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrIPMalformed, publicIP)
	}
	return publicIP, nil
}

func handleTXT(record *dns.TXT) (value string, err error) {
	switch len(record.Txt) {
	case 0:
		return "", fmt.Errorf("%w", ErrRecordEmpty)
	case 1:
		return strings.TrimSpace(record.Txt[0]), nil
	default:
		return "", fmt.Errorf("%w: %d instead of 1", ErrTooManyTXTRecords, len(record.Txt))
	}
}
