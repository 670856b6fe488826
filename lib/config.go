package lib

import (
	"Users2CSV/common"
	h "Users2CSV/helpers"
	"fmt"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
)

// ReadConf reads a .yaml/.yml or .properties file into a flat map with lower-case keys.
func ReadConf(path string) (map[string]string, error) {
	conf := make(map[string]string)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		yamlBytes, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
		var yamlObj map[string]interface{}
		if err = yaml.Unmarshal(yamlBytes, &yamlObj); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s as YAML", path)
		}
		for k, v := range yamlObj {
			if v == nil {
				continue
			}
			conf[strings.ToLower(k)] = fmt.Sprintf("%v", v)
		}
		return conf, nil
	}
	props, err := h.ReadPropertiesFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	for k, v := range props {
		conf[strings.ToLower(k)] = v
	}
	return conf, nil
}

// ApplyConf overwrites the common variables with the values from the config file.
func ApplyConf(conf map[string]string) {
	if v, ok := conf["in"]; ok && len(v) > 0 {
		common.InFile = v
	}
	if v, ok := conf["out"]; ok && len(v) > 0 {
		common.OutFile = v
	}
	if v, ok := conf["db"]; ok && len(v) > 0 {
		common.DbConnStr = v
	}
	if v, ok := conf["table"]; ok && len(v) > 0 {
		common.TableName = v
	}
	if v, ok := conf["crlf"]; ok {
		common.UseCRLF = h.IsTrue(v)
	}
	h.Log("DEBUG", fmt.Sprintf("Config applied: in=%s out=%s table=%s crlf=%v", common.InFile, common.OutFile, common.TableName, common.UseCRLF))
}
