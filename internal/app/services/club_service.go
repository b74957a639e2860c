package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/team-echo-club/echo-api/internal/app/models/dto"
	"github.com/team-echo-club/echo-api/internal/app/query"
	"github.com/team-echo-club/echo-api/internal/config"
	"github.com/team-echo-club/echo-api/internal/dataset"
	"github.com/team-echo-club/echo-api/internal/pkg/apperrors"
)

// Join channels a visitor can reach the club through
const (
	JoinChannelWhatsApp = "whatsapp"
	JoinChannelEmail    = "email"
)

// ClubService defines the interface for club profile and join operations
type ClubService interface {
	GetClubInfo(ctx context.Context) (*dto.ClubResponse, error)
	JoinLinks(ctx context.Context) (*dto.JoinLinksResponse, error)
	JoinQRCode(ctx context.Context, channel string) ([]byte, error)
}

// clubServiceImpl implements the ClubService interface
type clubServiceImpl struct {
	data   *dataset.Provider
	cfg    *config.Config
	logger zerolog.Logger
}

// NewClubService creates a new club service instance
func NewClubService(data *dataset.Provider, cfg *config.Config, logger zerolog.Logger) ClubService {
	return &clubServiceImpl{
		data:   data,
		cfg:    cfg,
		logger: logger,
	}
}

// GetClubInfo returns the club profile together with live counters derived
// from the datasets.
func (s *clubServiceImpl) GetClubInfo(ctx context.Context) (*dto.ClubResponse, error) {
	activities := s.data.Activities()
	return &dto.ClubResponse{
		ClubInfo: s.data.Club(),
		Counters: dto.ClubCounters{
			Activities: len(activities),
			Upcoming:   query.CountUpcoming(activities, time.Now()),
			Members:    len(s.data.Members()),
			MediaItems: len(s.data.Media()),
		},
	}, nil
}

// whatsAppLink builds the wa.me deep link carrying the prefilled join message
func (s *clubServiceImpl) whatsAppLink() string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		s.cfg.Club.WhatsAppNumber,
		url.QueryEscape(s.cfg.Club.JoinMessage),
	)
}

// mailtoLink builds the mailto link carrying the prefilled join message
func (s *clubServiceImpl) mailtoLink() string {
	params := url.Values{}
	params.Set("subject", fmt.Sprintf("Joining %s", s.cfg.Club.Name))
	params.Set("body", s.cfg.Club.JoinMessage)
	return fmt.Sprintf("mailto:%s?%s", s.cfg.Club.ContactEmail, params.Encode())
}

// JoinLinks returns the contact channels a visitor can use to join the club
func (s *clubServiceImpl) JoinLinks(ctx context.Context) (*dto.JoinLinksResponse, error) {
	return &dto.JoinLinksResponse{
		WhatsApp: s.whatsAppLink(),
		Email:    s.mailtoLink(),
	}, nil
}

// JoinQRCode renders the join link of the given channel as a PNG QR code
func (s *clubServiceImpl) JoinQRCode(ctx context.Context, channel string) ([]byte, error) {
	var link string
	switch channel {
	case JoinChannelWhatsApp, "":
		link = s.whatsAppLink()
	case JoinChannelEmail:
		link = s.mailtoLink()
	default:
		return nil, apperrors.NewCustomError(apperrors.ErrUnknownChannel, fmt.Sprintf("unknown join channel %q", channel))
	}

	qr, err := qrcode.New(link)
	if err != nil {
		return nil, fmt.Errorf("error creating QR code: %w", err)
	}

	var buf bytes.Buffer
	qrW := standard.NewWithWriter(nopWriteCloser{&buf},
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err := qr.Save(qrW); err != nil {
		return nil, fmt.Errorf("error rendering QR code: %w", err)
	}
	if err := qrW.Close(); err != nil {
		return nil, fmt.Errorf("error finishing QR code: %w", err)
	}
	return buf.Bytes(), nil
}

// nopWriteCloser adapts an in-memory buffer to the writer interface the QR
// renderer expects.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
