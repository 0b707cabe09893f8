package rpc

import (
	"encoding/json"
	"fmt"
	"net/url"

	"aleo-broadcaster/models"
	"aleo-broadcaster/util/log"

	"github.com/valyala/fasthttp"
)

// ProgramURL returns the explorer url of a program.
func (c *Client) ProgramURL(name string) string {
	return fmt.Sprintf("%s/%s/program/%s", c.explorerURL, c.network, url.PathEscape(name))
}

// FetchProgram gets a program's source from the explorer. The decoded body is
// kept as is.
func (c *Client) FetchProgram(name string) (*models.Program, error) {
	u := c.ProgramURL(name)
	log.Debugf("fetch program %s from %s", name, u)

	body, code, err := c.get(u)
	if err != nil {
		return nil, err
	}

	if code != fasthttp.StatusOK {
		log.Warnf("explorer returned http status %d for program %s", code, name)
	}

	if !json.Valid(body) {
		return nil, &TransportError{
			Op:  "GET",
			URL: u,
			Err: fmt.Errorf("response is not JSON (http status %d)", code),
		}
	}

	return &models.Program{
		Name:   name,
		Source: json.RawMessage(body),
	}, nil
}
