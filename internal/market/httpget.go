package market

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// getJSON performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure. Non-200 responses are an error; there is no
// retry.
func getJSON(client *http.Client, addr string, data any) error {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
