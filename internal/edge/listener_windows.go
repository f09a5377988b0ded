//go:build windows

package edge

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"modclick/internal/config"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHex = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx   = user32.NewProc("CallNextHookEx")
	procGetMessage       = user32.NewProc("GetMessageW")
	procPostThreadMsg    = user32.NewProc("PostThreadMessageW")
)

const (
	whKeyboardLL = 13
	wmKeydown    = 0x0100
	wmKeyup      = 0x0101
	wmSyskeydown = 0x0104
	wmSyskeyup   = 0x0105
	wmQuit       = 0x0012
)

// Виртуальные коды левой/правой клавиши каждого модификатора.
var vkCodes = map[config.Modifier][2]uint32{
	config.ModCtrl:  {0xA2, 0xA3}, // VK_LCONTROL, VK_RCONTROL
	config.ModShift: {0xA0, 0xA1}, // VK_LSHIFT, VK_RSHIFT
	config.ModAlt:   {0xA4, 0xA5}, // VK_LMENU, VK_RMENU
	config.ModSuper: {0x5B, 0x5C}, // VK_LWIN, VK_RWIN
}

type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	PtX     int32
	PtY     int32
}

// hookState - единственный активный хук процесса.
var hookState struct {
	mu       sync.Mutex
	codes    [2]uint32
	fn       func(bool)
	hook     uintptr
	threadID uint32
	done     chan struct{}
}

func hookProc(code int32, wparam uintptr, lparam uintptr) uintptr {
	if code >= 0 {
		kb := (*kbdllHookStruct)(unsafe.Pointer(lparam))
		hookState.mu.Lock()
		fn := hookState.fn
		codes := hookState.codes
		hookState.mu.Unlock()

		if fn != nil && (kb.VkCode == codes[0] || kb.VkCode == codes[1]) {
			switch wparam {
			case wmKeydown, wmSyskeydown:
				fn(true)
			case wmKeyup, wmSyskeyup:
				fn(false)
			}
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wparam, lparam)
	return ret
}

type windowsListener struct{}

// NewListener создаёт слушателя модификатора поверх low-level keyboard hook.
func NewListener() Listener {
	return windowsListener{}
}

func (windowsListener) Start(mod config.Modifier, fn func(bool)) error {
	codes, ok := vkCodes[mod]
	if !ok {
		return fmt.Errorf("модификатор %s не поддерживается на Windows", mod)
	}

	hookState.mu.Lock()
	hookState.codes = codes
	hookState.fn = fn
	hookState.done = make(chan struct{})
	done := hookState.done
	hookState.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		runtime.LockOSThread()

		hook, _, err := procSetWindowsHookEx.Call(
			whKeyboardLL,
			windows.NewCallback(hookProc),
			0, 0,
		)
		if hook == 0 {
			errCh <- fmt.Errorf("SetWindowsHookEx: %v", err)
			return
		}

		hookState.mu.Lock()
		hookState.hook = hook
		hookState.threadID = windows.GetCurrentThreadId()
		hookState.mu.Unlock()
		errCh <- nil

		var m msg
		for {
			ret, _, _ := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
			if int32(ret) <= 0 {
				break
			}
		}

		procUnhookWindowsHex.Call(hook)
		close(done)
	}()

	return <-errCh
}

func (windowsListener) Stop() error {
	hookState.mu.Lock()
	threadID := hookState.threadID
	done := hookState.done
	hookState.fn = nil
	hookState.hook = 0
	hookState.threadID = 0
	hookState.done = nil
	hookState.mu.Unlock()

	if threadID == 0 {
		return nil
	}

	procPostThreadMsg.Call(uintptr(threadID), wmQuit, 0, 0)
	if done != nil {
		<-done
	}
	return nil
}
