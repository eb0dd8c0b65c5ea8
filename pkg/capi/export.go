package capi

/*
#include <stdlib.h>
*/
import "C"
import "unsafe"

// called by the host to read a scenario file from disk; returns 0 on
// failure
//
//export scx_load
func scx_load(path *C.char) C.uintptr_t {
	return C.uintptr_t(loadPath(C.GoString(path)))
}

// called by the host to read a scenario from a byte buffer; returns 0 on
// failure
//
//export scx_load_mem
func scx_load_mem(data *C.uchar, size C.size_t) C.uintptr_t {
	buf := C.GoBytes(unsafe.Pointer(data), C.int(size))
	return C.uintptr_t(loadMem(buf))
}

// called by the host to convert the scenario behind a handle to the
// edition named by the ASCII token
//
//export scx_convert
func scx_convert(handle C.uintptr_t, edition *C.char) C.int {
	return C.int(convertHandle(uintptr(handle), C.GoString(edition)))
}

// called by the host to write the scenario behind a handle to disk; an
// empty edition token keeps the current edition
//
//export scx_save
func scx_save(handle C.uintptr_t, edition *C.char, path *C.char) C.int {
	return C.int(saveHandle(uintptr(handle), C.GoString(edition), C.GoString(path)))
}

// called by the host to release the scenario behind a handle
//
//export scx_free
func scx_free(handle C.uintptr_t) {
	freeHandle(uintptr(handle))
}
