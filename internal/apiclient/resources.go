package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"parsectl/internal/apierror"
	"parsectl/internal/models"
)

// Parser configurations

// ListConfigs fetches all parser configurations.
func (c *Client) ListConfigs(ctx context.Context) ([]models.ParserConfig, error) {
	var configs []models.ParserConfig
	if err := c.getJSON(ctx, "/parser-configs", &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// GetConfig fetches one parser configuration by id.
func (c *Client) GetConfig(ctx context.Context, id string) (models.ParserConfig, error) {
	var cfg models.ParserConfig
	err := c.getJSON(ctx, "/parser-configs/"+url.PathEscape(id), &cfg)
	if err != nil {
		var reqErr *apierror.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
			return cfg, &apierror.NotFoundError{Resource: "parser configuration", ID: id}
		}
		return cfg, err
	}
	return cfg, nil
}

// CreateConfig creates a parser configuration and returns the saved entity.
func (c *Client) CreateConfig(ctx context.Context, payload models.ConfigPayload) (models.ParserConfig, error) {
	var cfg models.ParserConfig
	err := c.postJSON(ctx, "/parser-configs", payload, &cfg)
	return cfg, err
}

// UpdateConfig updates an existing parser configuration and returns the saved
// entity.
func (c *Client) UpdateConfig(ctx context.Context, id string, payload models.ConfigPayload) (models.ParserConfig, error) {
	var cfg models.ParserConfig
	err := c.putJSON(ctx, "/parser-configs/"+url.PathEscape(id), payload, &cfg)
	return cfg, err
}

// DeleteConfig deletes a parser configuration.
func (c *Client) DeleteConfig(ctx context.Context, id string) error {
	return c.delete(ctx, "/parser-configs/"+url.PathEscape(id))
}

// TestConfig runs a test request against the backend extraction engine and
// returns the raw response body. Normalization of the result shape belongs
// to the test runner, not the client. A blank sample body is rejected here,
// before any request leaves the process.
func (c *Client) TestConfig(ctx context.Context, req models.TestRequest) ([]byte, error) {
	if strings.TrimSpace(req.SampleEmailHTML) == "" {
		return nil, &apierror.ValidationError{Field: "sampleEmailHtml", Reason: "sample email body must not be blank"}
	}
	return c.do(ctx, http.MethodPost, "/parser-configs/test", req)
}

// Banks

// ListBanks fetches all banks.
func (c *Client) ListBanks(ctx context.Context) ([]models.Bank, error) {
	var banks []models.Bank
	if err := c.getJSON(ctx, "/banks", &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// GetBank fetches one bank by id.
func (c *Client) GetBank(ctx context.Context, id string) (models.Bank, error) {
	var bank models.Bank
	err := c.getJSON(ctx, "/banks/"+url.PathEscape(id), &bank)
	if err != nil {
		var reqErr *apierror.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
			return bank, &apierror.NotFoundError{Resource: "bank", ID: id}
		}
		return bank, err
	}
	return bank, nil
}

// CreateBank creates a bank and returns the saved entity.
func (c *Client) CreateBank(ctx context.Context, bank models.Bank) (models.Bank, error) {
	var saved models.Bank
	err := c.postJSON(ctx, "/banks", bank, &saved)
	return saved, err
}

// UpdateBank updates a bank and returns the saved entity.
func (c *Client) UpdateBank(ctx context.Context, id string, bank models.Bank) (models.Bank, error) {
	var saved models.Bank
	err := c.putJSON(ctx, "/banks/"+url.PathEscape(id), bank, &saved)
	return saved, err
}

// DeleteBank deletes a bank.
func (c *Client) DeleteBank(ctx context.Context, id string) error {
	return c.delete(ctx, "/banks/"+url.PathEscape(id))
}

// Currencies and synonyms

// ListCurrencies fetches all supported currencies.
func (c *Client) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := c.getJSON(ctx, "/currencies", &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// CreateCurrency adds a currency.
func (c *Client) CreateCurrency(ctx context.Context, currency models.Currency) (models.Currency, error) {
	var saved models.Currency
	err := c.postJSON(ctx, "/currencies", currency, &saved)
	return saved, err
}

// DeleteCurrency removes a currency by code.
func (c *Client) DeleteCurrency(ctx context.Context, code string) error {
	return c.delete(ctx, "/currencies/"+url.PathEscape(code))
}

// ListSynonyms fetches the synonyms of a currency.
func (c *Client) ListSynonyms(ctx context.Context, currencyCode string) ([]models.CurrencySynonym, error) {
	var synonyms []models.CurrencySynonym
	path := fmt.Sprintf("/currencies/%s/synonyms", url.PathEscape(currencyCode))
	if err := c.getJSON(ctx, path, &synonyms); err != nil {
		return nil, err
	}
	return synonyms, nil
}

// AddSynonym attaches a synonym spelling to a currency.
func (c *Client) AddSynonym(ctx context.Context, currencyCode, synonym string) (models.CurrencySynonym, error) {
	var saved models.CurrencySynonym
	path := fmt.Sprintf("/currencies/%s/synonyms", url.PathEscape(currencyCode))
	err := c.postJSON(ctx, path, models.CurrencySynonym{CurrencyCode: currencyCode, Synonym: synonym}, &saved)
	return saved, err
}

// RemoveSynonym deletes a synonym by id.
func (c *Client) RemoveSynonym(ctx context.Context, id string) error {
	return c.delete(ctx, "/currency-synonyms/"+url.PathEscape(id))
}

// Users

// ListUsers fetches all administrative users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetUserActive activates or deactivates a user.
func (c *Client) SetUserActive(ctx context.Context, id string, active bool) (models.User, error) {
	var saved models.User
	path := "/users/" + url.PathEscape(id)
	err := c.putJSON(ctx, path, map[string]bool{"isActive": active}, &saved)
	return saved, err
}

// Merchant duplicate review

// ListMerchantDuplicates fetches the duplicate pairs in the given status.
func (c *Client) ListMerchantDuplicates(ctx context.Context, status string) ([]models.MerchantDuplicate, error) {
	var duplicates []models.MerchantDuplicate
	path := "/merchant-duplicates"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	if err := c.getJSON(ctx, path, &duplicates); err != nil {
		return nil, err
	}
	return duplicates, nil
}

// MergeDuplicate merges a duplicate pair into its canonical merchant.
func (c *Client) MergeDuplicate(ctx context.Context, id string) (models.MerchantDuplicate, error) {
	var saved models.MerchantDuplicate
	err := c.postJSON(ctx, "/merchant-duplicates/"+url.PathEscape(id)+"/merge", nil, &saved)
	return saved, err
}

// DismissDuplicate marks a duplicate pair as not actually duplicated.
func (c *Client) DismissDuplicate(ctx context.Context, id string) (models.MerchantDuplicate, error) {
	var saved models.MerchantDuplicate
	err := c.postJSON(ctx, "/merchant-duplicates/"+url.PathEscape(id)+"/dismiss", nil, &saved)
	return saved, err
}

// Reports

// CategoryChanges fetches the category-change report for a date range. Dates
// are formatted YYYY-MM-DD; either bound may be empty.
func (c *Client) CategoryChanges(ctx context.Context, from, to string) ([]models.CategoryChangeEntry, error) {
	var entries []models.CategoryChangeEntry
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	path := "/reports/category-changes"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	if err := c.getJSON(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
