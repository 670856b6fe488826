package bs_clients

import (
	"Users2CSV/lib"
)

// Client : Like an OOP interface. Reads the whole source and replaces the whole destination.
type Client interface {
	ReadPath(string) ([]byte, error)
	WriteToPath(string, []byte) error
}

func GetClient(uri string) Client {
	switch lib.GetSchema(uri) {
	case "s3":
		return &S3Client{}
	case "az":
		return &AzClient{}
	}
	// Default is FileClient
	return &FileClient{}
}
