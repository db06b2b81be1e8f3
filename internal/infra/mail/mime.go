package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
)

// ExtractTextBody tira o corpo text/plain de uma mensagem RFC822 crua.
// Multipart: primeira parte text/plain ganha. HTML puro e anexos são
// ignorados — o classificador só precisa do texto da resposta.
func ExtractTextBody(raw string) (string, error) {
	msg, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("erro ao parsear mensagem: %w", err)
	}

	contentType := msg.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(strings.ToLower(mediaType), "multipart/") && params["boundary"] != "" {
		reader := multipart.NewReader(msg.Body, params["boundary"])
		return textFromMultipart(reader)
	}

	decoded, err := decodeBody(msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao decodificar corpo: %w", err)
	}

	return strings.TrimSpace(string(decoded)), nil
}

func textFromMultipart(reader *multipart.Reader) (string, error) {
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("erro ao ler parte multipart: %w", err)
		}

		mediaType, _, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(mediaType), "text/plain") {
			continue
		}

		decoded, err := decodeBody(part.Header.Get("Content-Transfer-Encoding"), part)
		if err != nil {
			return "", fmt.Errorf("erro ao decodificar parte: %w", err)
		}

		return strings.TrimSpace(string(decoded)), nil
	}
}

func decodeBody(encoding string, body io.Reader) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return io.ReadAll(base64.NewDecoder(base64.StdEncoding, newLineStripper(body)))
	case "quoted-printable":
		return io.ReadAll(quotedprintable.NewReader(body))
	default:
		return io.ReadAll(body)
	}
}

// newLineStripper remove CR/LF antes do decoder base64.
func newLineStripper(r io.Reader) io.Reader {
	data, err := io.ReadAll(r)
	if err != nil {
		return r
	}
	data = bytes.ReplaceAll(data, []byte("\r"), nil)
	data = bytes.ReplaceAll(data, []byte("\n"), nil)
	return bytes.NewReader(data)
}
