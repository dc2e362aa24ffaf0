//go:build windows

package game

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Source code in this file was adapted from https://github.com/jeandeaual/go-locale
// The following license applies to the source code in this file:
//
// MIT License
//
// Copyright (c) 2020 Alexis Jeandeau
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// localeNameMaxLength is LOCALE_NAME_MAX_LENGTH.
const localeNameMaxLength uint32 = 85

func windowsLocale(procName string) (string, error) {
	dll, err := windows.LoadDLL("kernel32")
	if err != nil {
		return "", fmt.Errorf("could not find the kernel32 DLL: %w", err)
	}
	defer dll.Release()

	proc, err := dll.FindProc(procName)
	if err != nil {
		return "", fmt.Errorf("could not find the %s proc in kernel32: %w", procName, err)
	}

	buffer := make([]uint16, localeNameMaxLength)
	ret, _, err := proc.Call(uintptr(unsafe.Pointer(&buffer[0])), uintptr(localeNameMaxLength))
	if ret == 0 {
		return "", fmt.Errorf("locale not found when calling %s: %w", procName, err)
	}
	return windows.UTF16ToString(buffer), nil
}

// GetLocale returns LANG when set, otherwise the user or system default
// locale name.
func GetLocale() (string, error) {
	if locale := os.Getenv("LANG"); locale != "" {
		return locale, nil
	}

	var err error
	for _, procName := range [...]string{"GetUserDefaultLocaleName", "GetSystemDefaultLocaleName"} {
		var locale string
		locale, err = windowsLocale(procName)
		if err == nil {
			return locale, nil
		}
	}
	return "", fmt.Errorf("cannot determine locale: %w", err)
}
