package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// enabled reports whether all three files are set.
func (s TLSSettings) enabled() bool {
	return s.CAFile != "" && s.CertFile != "" && s.KeyFile != ""
}

// LoadTLSConfig builds the client side of an mTLS connection: the client
// certificate is presented to the server and the server is verified against
// the CA bundle.
func LoadTLSConfig(s TLSSettings) (*tls.Config, error) {
	clientCert, err := tls.LoadX509KeyPair(s.CertFile, s.KeyFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load client certificate %s", s.CertFile)
	}

	bundle, err := os.ReadFile(s.CAFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CA bundle")
	}

	roots := x509.NewCertPool()
	if !roots.AppendCertsFromPEM(bundle) {
		return nil, errors.Errorf("CA bundle %s holds no PEM certificates", s.CAFile)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{clientCert},
		RootCAs:      roots,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
