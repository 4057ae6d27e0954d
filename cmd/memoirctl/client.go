package main

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

func newClient() *resty.Client {
	c := resty.New().SetBaseURL(apiFlag)
	if tokenFlag != "" {
		c.SetAuthToken(tokenFlag)
	}
	return c
}

func doGet(path string) ([]byte, error) {
	resp, err := newClient().R().Get(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

func doPostJSON(path string, payload interface{}) ([]byte, error) {
	resp, err := newClient().R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

func doPutJSON(path string, payload interface{}) ([]byte, error) {
	resp, err := newClient().R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

// doDownload writes the response body straight to a file.
func doDownload(path, outFile string) error {
	resp, err := newClient().R().
		SetOutput(outFile).
		Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d", resp.StatusCode())
	}
	return nil
}
