package digivoice

import "errors"

// ErrResourceInit indicates NewEncoder or NewDecoder failed to allocate an
// internal FFT plan. Wrapped with additional context via fmt.Errorf; test
// with errors.Is(err, ErrResourceInit).
var ErrResourceInit = errors.New("digivoice: resource initialization failed")
