package bs_clients

import (
	"Users2CSV/common"
	h "Users2CSV/helpers"
	"Users2CSV/lib"
	"context"
	"fmt"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/pkg/errors"
	"io"
	"time"
)

type AzClient struct{}

var azApi *azblob.Client

func getAzApi() (*azblob.Client, error) {
	if azApi != nil {
		return azApi, nil
	}
	accountName := h.GetEnv("AZURE_STORAGE_ACCOUNT_NAME", "")
	accountKey := h.GetEnv("AZURE_STORAGE_ACCOUNT_KEY", "")
	connStr := h.GetEnv("AZURE_STORAGE_CONNECTION_STRING", "")
	var err error
	if len(connStr) == 0 && len(accountName) > 0 && len(accountKey) > 0 {
		connStr = "DefaultEndpointsProtocol=https;AccountName=" + accountName + ";AccountKey=" + accountKey + ";EndpointSuffix=core.windows.net"
	}
	if len(connStr) > 0 {
		azApi, err = azblob.NewClientFromConnectionString(connStr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "Azure configuration error")
		}
		return azApi, nil
	}
	if len(accountName) == 0 {
		return nil, errors.New("missing AZURE_STORAGE_CONNECTION_STRING or AZURE_STORAGE_ACCOUNT_NAME")
	}
	// https://pkg.go.dev/github.com/Azure/azure-sdk-for-go/sdk/azidentity#readme-environment-variables
	h.Log("INFO", "No account key. Using the default Azure credential for "+accountName)
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, errors.Wrap(err, "Azure credential error")
	}
	azApi, err = azblob.NewClient(fmt.Sprintf("https://%s.blob.core.windows.net/", accountName), cred, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Azure configuration error")
	}
	return azApi, nil
}

func splitAzUri(uri string) (string, string, error) {
	container, blob := lib.GetContainerAndKey(uri)
	if len(container) == 0 || len(blob) == 0 {
		return "", "", errors.Errorf("expected az://container/blob but got '%s'", uri)
	}
	return container, blob, nil
}

func (a *AzClient) ReadPath(uri string) ([]byte, error) {
	if common.Debug {
		defer h.Elapsed(time.Now().UnixMilli(), "Read "+uri, int64(0))
	} else {
		defer h.Elapsed(time.Now().UnixMilli(), "Slow file read for path:"+uri, common.SlowMS*2)
	}
	container, blob, err := splitAzUri(uri)
	if err != nil {
		return nil, err
	}
	client, err := getAzApi()
	if err != nil {
		return nil, err
	}
	resp, err := client.DownloadStream(context.TODO(), container, blob, nil)
	if err != nil {
		h.Log("DEBUG", fmt.Sprintf("DownloadStream for %s failed with %s.", uri, err.Error()))
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (a *AzClient) WriteToPath(uri string, contents []byte) error {
	if common.Debug {
		defer h.Elapsed(time.Now().UnixMilli(), "Wrote "+uri, 0)
	} else {
		defer h.Elapsed(time.Now().UnixMilli(), "Slow file write for path:"+uri, common.SlowMS*2)
	}
	container, blob, err := splitAzUri(uri)
	if err != nil {
		return err
	}
	client, err := getAzApi()
	if err != nil {
		return err
	}
	resp, err := client.UploadBuffer(context.TODO(), container, blob, contents, nil)
	if err != nil {
		h.Log("DEBUG", fmt.Sprintf("Path: %s. Resp: %v", uri, resp))
		return err
	}
	return nil
}
