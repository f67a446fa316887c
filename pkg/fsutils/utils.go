package fsutils

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

func ReadJSONFile(filePath string, required bool, o interface{}) (err error) {
	jsonDecoderFactory := func(r io.Reader) Decoder {
		return json.NewDecoder(r)
	}
	return ReadFile(filePath, required, o, jsonDecoderFactory)
}

// ReadYAMLFile reads a YAML document into o. An empty file leaves o untouched.
func ReadYAMLFile(filePath string, required bool, o interface{}) (err error) {
	yamlDecoderFactory := func(r io.Reader) Decoder {
		return yaml.NewDecoder(r)
	}
	err = ReadFile(filePath, required, o, yamlDecoderFactory)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close file", "path", filePath, "error", err)
		}
	}()
	decoder := newDecoder(file)
	return decoder.Decode(o)
}

// WriteJSONFile writes o as indented JSON, replacing the file.
func WriteJSONFile(filePath string, o interface{}) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

// ReadFileData reads at most max bytes from the start of the file,
// the last -max bytes when max is negative, or the whole file when max is 0.
func ReadFileData(filePath string, max int) (data []byte, err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	switch {
	case max == 0:
		return io.ReadAll(file)
	case max > 0:
		return io.ReadAll(io.LimitReader(file, int64(max)))
	}
	var info os.FileInfo
	if info, err = file.Stat(); err != nil {
		return nil, err
	}
	if tail := int64(-max); info.Size() > tail {
		if _, err = file.Seek(-tail, io.SeekEnd); err != nil {
			return nil, err
		}
	}
	return io.ReadAll(file)
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

var osUserHomeDir = os.UserHomeDir

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
