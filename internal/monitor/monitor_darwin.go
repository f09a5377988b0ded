//go:build darwin

package monitor

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#import <Foundation/Foundation.h>
#include <stdlib.h>
#include <string.h>

extern void goFrontmostChanged(int pid, const char* bundleID, const char* name);

static id activationObserver = nil;

// startActivationObserver подписывается на уведомления NSWorkspace
// о смене активного приложения.
static void startActivationObserver() {
    if (activationObserver != nil) {
        return;
    }
    NSNotificationCenter *center = [[NSWorkspace sharedWorkspace] notificationCenter];
    activationObserver = [center
        addObserverForName:NSWorkspaceDidActivateApplicationNotification
                    object:nil
                     queue:[NSOperationQueue mainQueue]
                usingBlock:^(NSNotification *note) {
        NSRunningApplication *app = note.userInfo[NSWorkspaceApplicationKey];
        if (app == nil) {
            return;
        }
        const char *bundleID = app.bundleIdentifier == nil ? "" : [app.bundleIdentifier UTF8String];
        const char *name = app.localizedName == nil ? "" : [app.localizedName UTF8String];
        goFrontmostChanged((int)app.processIdentifier, bundleID, name);
    }];
}

static void stopActivationObserver() {
    if (activationObserver == nil) {
        return;
    }
    [[[NSWorkspace sharedWorkspace] notificationCenter] removeObserver:activationObserver];
    activationObserver = nil;
}

// frontmostApp возвращает текущее активное приложение.
// bundleID и name копируются в выделенные буферы, вызывающий освобождает их.
static int frontmostApp(char **bundleID, char **name) {
    NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
    if (app == nil) {
        return -1;
    }
    *bundleID = strdup(app.bundleIdentifier == nil ? "" : [app.bundleIdentifier UTF8String]);
    *name = strdup(app.localizedName == nil ? "" : [app.localizedName UTF8String]);
    return (int)app.processIdentifier;
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"modclick/internal/match"
)

var observerState struct {
	mu sync.Mutex
	fn Handler
}

//export goFrontmostChanged
func goFrontmostChanged(pid C.int, bundleID *C.char, name *C.char) {
	observerState.mu.Lock()
	fn := observerState.fn
	observerState.mu.Unlock()
	if fn == nil {
		return
	}
	fn(match.FrontApp{
		BundleID: C.GoString(bundleID),
		PID:      int(pid),
		Name:     C.GoString(name),
	})
}

type darwinSource struct{}

func newSource() Source {
	return darwinSource{}
}

func (darwinSource) Start(fn Handler) error {
	observerState.mu.Lock()
	observerState.fn = fn
	observerState.mu.Unlock()
	C.startActivationObserver()
	return nil
}

func (darwinSource) Stop() error {
	C.stopActivationObserver()
	observerState.mu.Lock()
	observerState.fn = nil
	observerState.mu.Unlock()
	return nil
}

func (darwinSource) Current() (match.FrontApp, error) {
	var bundleID, name *C.char
	pid := C.frontmostApp(&bundleID, &name)
	if pid < 0 {
		return match.FrontApp{}, fmt.Errorf("активное приложение не определено")
	}
	defer C.free(unsafe.Pointer(bundleID))
	defer C.free(unsafe.Pointer(name))

	return match.FrontApp{
		BundleID: C.GoString(bundleID),
		PID:      int(pid),
		Name:     C.GoString(name),
	}, nil
}
