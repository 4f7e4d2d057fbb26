package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateOnlyFormat = "2006-01-02"

// GoogleService adds events through the Google Calendar API.
type GoogleService struct {
	service    *gcal.Service
	calendarID string
}

// NewGoogleFromCredentialsFile creates a Google Calendar backend from a
// credentials JSON file path. Service Account credentials are used directly;
// OAuth Desktop credentials additionally require a token.json next to the
// binary (see scripts/gcal-auth).
func NewGoogleFromCredentialsFile(ctx context.Context, credentialsPath, calendarID string) (*GoogleService, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewGoogleFromCredentialsJSON(ctx, data, calendarID)
}

// NewGoogleFromCredentialsJSON creates a Google Calendar backend from raw
// credentials JSON bytes.
func NewGoogleFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, calendarID string) (*GoogleService, error) {
	if calendarID == "" {
		calendarID = "primary"
	}

	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, gcal.CalendarScope)
	if err == nil {
		svc, svcErr := gcal.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &GoogleService{service: svc, calendarID: calendarID}, nil
	}

	// Fallback: OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{gcal.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: run quickcal's gcal-auth script first")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := gcal.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &GoogleService{service: svc, calendarID: calendarID}, nil
}

// NewGoogleFromHTTP creates a Google Calendar backend from a pre-authorized
// HTTP client.
func NewGoogleFromHTTP(ctx context.Context, client *http.Client, calendarID string) (*GoogleService, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleService{service: svc, calendarID: calendarID}, nil
}

// Create inserts the event. All-day events use date-only bounds; a reminder
// becomes a popup override replacing the calendar's defaults.
func (s *GoogleService) Create(ctx context.Context, ev Event) error {
	gev := &gcal.Event{Summary: ev.Title}

	if ev.AllDay {
		gev.Start = &gcal.EventDateTime{Date: ev.Start.Format(dateOnlyFormat)}
		gev.End = &gcal.EventDateTime{Date: ev.End.Format(dateOnlyFormat)}
	} else {
		gev.Start = &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)}
		gev.End = &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339)}
	}

	if ev.ReminderMinutes > 0 {
		gev.Reminders = &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: int64(ev.ReminderMinutes)},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	if _, err := s.service.Events.Insert(s.calendarID, gev).Context(ctx).Do(); err != nil {
		return fmt.Errorf("google calendar: %w", err)
	}
	return nil
}
