package bs_clients

import (
	"Users2CSV/common"
	h "Users2CSV/helpers"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type FileClient struct{}

func localPath(path string) string {
	return strings.TrimPrefix(path, "file://")
}

func (c *FileClient) ReadPath(path string) ([]byte, error) {
	if common.Debug {
		defer h.Elapsed(time.Now().UnixMilli(), "DEBUG Read "+path, int64(0))
	} else {
		defer h.Elapsed(time.Now().UnixMilli(), "WARN  slow file read for path:"+path, common.SlowMS)
	}
	if path == common.STDIO {
		return io.ReadAll(os.Stdin)
	}
	bytes, err := os.ReadFile(localPath(path))
	if err != nil {
		h.Log("DEBUG", fmt.Sprintf("ReadFile for %s failed with %s.", path, err.Error()))
		return nil, err
	}
	return bytes, nil
}

func (c *FileClient) WriteToPath(path string, contents []byte) error {
	if common.Debug {
		defer h.Elapsed(time.Now().UnixMilli(), "DEBUG Wrote "+path, 0)
	} else {
		defer h.Elapsed(time.Now().UnixMilli(), "WARN  slow file write for path:"+path, common.SlowMS)
	}
	if path == common.STDIO {
		_, err := os.Stdout.Write(contents)
		return err
	}
	// O_TRUNC as the previous contents should be fully replaced
	f, err := os.OpenFile(localPath(path), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	byteLen, err := f.Write(contents)
	if byteLen < 0 || err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
