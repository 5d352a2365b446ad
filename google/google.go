package google

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SpreadsheetsScope is the OAuth scope for read/write spreadsheet access.
const SpreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

const sheetsServiceType = "sheets"

// Client builds authenticated Google service wrappers sharing one token
// source and one rate limiter.
type Client struct {
	tokenSource   oauth2.TokenSource
	sheetsLimiter *rate.Limiter
	logger        zerolog.Logger
}

type serviceBase struct {
	serviceType string
	limiter     *rate.Limiter
	logger      zerolog.Logger
}

func NewClient(tokenSource oauth2.TokenSource, queriesPerMinute int, burstSize int, logger zerolog.Logger) *Client {
	maximumQueriesPerSecond := float64(queriesPerMinute) / 60

	return &Client{
		tokenSource:   tokenSource,
		sheetsLimiter: rate.NewLimiter(rate.Limit(maximumQueriesPerSecond), burstSize),
		logger:        logger,
	}
}

// ServiceAccountTokenSource exchanges service account key JSON for a token
// source carrying the spreadsheets scope.
func ServiceAccountTokenSource(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	conf, err := oauthgoogle.JWTConfigFromJSON(credentialsJSON, SpreadsheetsScope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse service account credentials")
	}

	return conf.TokenSource(ctx), nil
}

func (g *Client) NewSheetsService(ctx context.Context) (SheetsInterface, error) {
	srv, err := sheets.NewService(ctx, option.WithTokenSource(g.tokenSource))
	if err != nil {
		return nil, err
	}

	return &SheetsService{
		service: srv,
		serviceBase: serviceBase{
			serviceType: sheetsServiceType,
			limiter:     g.sheetsLimiter,
			logger:      g.logger,
		},
	}, nil
}

func (g *Client) ReloadRateLimits(newQueriesPerMinute int, newBurstSize int) {
	g.sheetsLimiter.SetLimit(rate.Limit(float64(newQueriesPerMinute) / 60))
	g.sheetsLimiter.SetBurst(newBurstSize)
}

func (ds serviceBase) checkRateLimits(ctx context.Context) error {
	if ds.limiter != nil {
		err := ds.limiter.WaitN(ctx, 1)
		if err != nil {
			return err
		}
	}

	return nil
}

// logGoogleErrors surfaces the status and first reason of a failed call. The
// reason separates per-user rate limiting from project-wide quota problems.
func (ds serviceBase) logGoogleErrors(err error) {
	var googleErr *googleapi.Error
	if !errors.As(err, &googleErr) {
		return
	}

	reason := ""
	for _, item := range googleErr.Errors {
		if item.Reason != "" {
			reason = item.Reason
			break
		}
	}

	ds.logger.Warn().
		Str("service", ds.serviceType).
		Int("status", googleErr.Code).
		Str("reason", reason).
		Msg("google api call failed")
}
