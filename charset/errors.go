package charset

import "github.com/go-frame/framecodec"

func errUnknown(name string) error {
	return &framecodec.CharsetError{Name: name}
}
