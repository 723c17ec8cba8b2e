package middleware

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

var gzipMagic = []byte{0x1f, 0x8b}

func DecompressMiddleware(c *resty.Client, resp *resty.Response) error {
	encoding := resp.Header().Get("Content-Encoding")
	body := resp.Body()
	if encoding == "" || len(body) == 0 {
		return nil
	}

	var reader io.ReadCloser
	var err error

	switch encoding {
	case "br":
		reader = io.NopCloser(brotli.NewReader(bytes.NewReader(body)))
	case "gzip":
		// resty already inflates gzip bodies it can recognise
		if !bytes.HasPrefix(body, gzipMagic) {
			return nil
		}
		reader, err = gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return err
		}
		defer reader.Close()
	default:
		return nil
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	resp.SetBody(decompressed)
	return nil
}
