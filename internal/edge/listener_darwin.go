//go:build darwin

package edge

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>

extern void goModifierFlags(uint64_t flags);

// flagsCallback пробрасывает kCGEventFlagsChanged в Go.
static CGEventRef flagsCallback(CGEventTapProxy proxy, CGEventType type,
                                CGEventRef event, void *refcon) {
    if (type == kCGEventFlagsChanged) {
        goModifierFlags((uint64_t)CGEventGetFlags(event));
    }
    return event;
}

static CFMachPortRef createFlagsTap() {
    CGEventMask mask = 1 << kCGEventFlagsChanged;
    return CGEventTapCreate(
        kCGSessionEventTap,
        kCGHeadInsertEventTap,
        kCGEventTapOptionListenOnly,
        mask,
        flagsCallback,
        NULL
    );
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"sync"

	"modclick/internal/config"
)

// Маски флагов CGEvent.
const (
	maskShift uint64 = 0x00020000 // kCGEventFlagMaskShift
	maskCtrl  uint64 = 0x00040000 // kCGEventFlagMaskControl
	maskAlt   uint64 = 0x00080000 // kCGEventFlagMaskAlternate
	maskCmd   uint64 = 0x00100000 // kCGEventFlagMaskCommand
	maskFn    uint64 = 0x00800000 // kCGEventFlagMaskSecondaryFn
)

var flagMasks = map[config.Modifier]uint64{
	config.ModShift: maskShift,
	config.ModCtrl:  maskCtrl,
	config.ModAlt:   maskAlt,
	config.ModSuper: maskCmd,
	config.ModFn:    maskFn,
}

// tapState - единственный активный event tap процесса.
var tapState struct {
	mu      sync.Mutex
	mask    uint64
	fn      func(bool)
	tap     C.CFMachPortRef
	runLoop C.CFRunLoopRef
	done    chan struct{}
}

//export goModifierFlags
func goModifierFlags(flags C.uint64_t) {
	tapState.mu.Lock()
	fn := tapState.fn
	mask := tapState.mask
	tapState.mu.Unlock()
	if fn != nil {
		fn(uint64(flags)&mask != 0)
	}
}

type darwinListener struct{}

// NewListener создаёт слушателя модификатора поверх CGEventTap.
func NewListener() Listener {
	return darwinListener{}
}

func (darwinListener) Start(mod config.Modifier, fn func(bool)) error {
	mask, ok := flagMasks[mod]
	if !ok {
		return fmt.Errorf("неизвестный модификатор: %s", mod)
	}

	tap := C.createFlagsTap()
	if tap == 0 {
		return fmt.Errorf("CGEventTapCreate не удался (нужно разрешение Accessibility)")
	}

	tapState.mu.Lock()
	tapState.mask = mask
	tapState.fn = fn
	tapState.tap = tap
	tapState.done = make(chan struct{})
	done := tapState.done
	tapState.mu.Unlock()

	started := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		source := C.CFMachPortCreateRunLoopSource(C.kCFAllocatorDefault, tap, 0)
		rl := C.CFRunLoopGetCurrent()

		tapState.mu.Lock()
		tapState.runLoop = rl
		tapState.mu.Unlock()

		C.CFRunLoopAddSource(rl, source, C.kCFRunLoopCommonModes)
		C.CFRelease(C.CFTypeRef(source))
		C.CGEventTapEnable(tap, C.bool(true))
		close(started)
		C.CFRunLoopRun()
		close(done)
	}()
	<-started

	return nil
}

func (darwinListener) Stop() error {
	tapState.mu.Lock()
	tap := tapState.tap
	rl := tapState.runLoop
	done := tapState.done
	tapState.fn = nil
	tapState.tap = 0
	tapState.runLoop = 0
	tapState.done = nil
	tapState.mu.Unlock()

	if tap == 0 {
		return nil
	}

	C.CGEventTapEnable(tap, C.bool(false))
	if rl != 0 {
		C.CFRunLoopStop(rl)
	}
	if done != nil {
		<-done
	}
	C.CFRelease(C.CFTypeRef(tap))
	return nil
}
