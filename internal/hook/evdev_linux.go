//go:build linux

package hook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unsafe"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sys/unix"

	"github.com/dshills/keyscreen/internal/input/key"
)

// DefaultInputDir is where evdev device nodes live.
const DefaultInputDir = "/dev/input"

// pollInterval bounds how long a read waits before rechecking the context.
const pollInterval = 200 * time.Millisecond

// settleDelay gives udev time to apply permissions to a new device node.
const settleDelay = 250 * time.Millisecond

var timevalSize = int(unsafe.Sizeof(unix.Timeval{}))

// Device is a detected keyboard device.
type Device struct {
	Path string
	Name string
}

// Evdev captures keys globally from a Linux input device.
// The device is never grabbed, so keys still reach the focused application.
type Evdev struct {
	device   string
	inputDir string
	opts     options
}

// NewEvdev creates an evdev hook. An empty device path means auto-detect.
func NewEvdev(device string, opts ...Option) *Evdev {
	return &Evdev{
		device:   device,
		inputDir: DefaultInputDir,
		opts:     applyOptions(opts),
	}
}

// Name returns "evdev".
func (h *Evdev) Name() string {
	return "evdev"
}

// Start opens the device and starts the reader goroutine.
func (h *Evdev) Start(ctx context.Context, sink Sink) error {
	fd, dev, err := h.open()
	if err != nil {
		return installError(h.Name(), err)
	}
	h.opts.logger.Info("reading keys from %s (%s)", dev.Path, dev.Name)

	go h.run(ctx, fd, sink)
	return nil
}

func (h *Evdev) open() (int, Device, error) {
	if h.device != "" {
		fd, err := openDevice(h.device)
		if err != nil {
			return -1, Device{}, err
		}
		return fd, Device{Path: h.device, Name: readDeviceName(fd)}, nil
	}

	devices, err := ListKeyboards(h.inputDir)
	if err != nil {
		return -1, Device{}, err
	}
	dev := devices[0]
	fd, err := openDevice(dev.Path)
	if err != nil {
		return -1, Device{}, err
	}
	return fd, dev, nil
}

func (h *Evdev) run(ctx context.Context, fd int, sink Sink) {
	log := h.opts.logger
	for {
		err := h.readLoop(ctx, fd, sink)
		_ = unix.Close(fd)
		if ctx.Err() != nil {
			return
		}

		log.Warn("input device lost: %v", err)
		// Held state is unknown once the device is gone.
		releaseAll(sink, h.opts.modifierKeys, log)

		fd, err = h.reconnect(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Warn("evdev hook stopped: %v", err)
			}
			return
		}
	}
}

// readLoop reads events until the context is done or the device fails.
func (h *Evdev) readLoop(ctx context.Context, fd int, sink Sink) error {
	buf := make([]byte, timevalSize+8)
	pfd := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for ctx.Err() == nil {
		n, err := unix.Poll(pfd, int(pollInterval/time.Millisecond))
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("poll: %w", err)
		}
		if n == 0 {
			continue
		}
		// Pending events are read before a hangup ends the loop.
		if pfd[0].Revents&unix.POLLIN == 0 {
			if pfd[0].Revents&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
				return unix.ENODEV
			}
			continue
		}

		n, err = unix.Read(fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("read: %w", err)
		}
		if n == 0 {
			return unix.ENODEV
		}
		if n != len(buf) {
			continue
		}

		ev, ok := decodeInputEvent(buf, timevalSize)
		if !ok {
			continue
		}
		k, dir, ok := transitionFor(ev)
		if !ok {
			continue
		}
		deliver(sink, key.NewTransition(k, dir), h.opts.logger)
	}
	return ctx.Err()
}

// reconnect waits for a new device node under the input directory and
// opens the first keyboard found.
func (h *Evdev) reconnect(ctx context.Context) (int, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return -1, err
	}
	defer watcher.Close()

	if err := watcher.Add(h.inputDir); err != nil {
		return -1, err
	}
	h.opts.logger.Info("waiting for a keyboard in %s", h.inputDir)

	for {
		// The device may have reappeared before the watch was added.
		if fd, dev, err := h.open(); err == nil {
			h.opts.logger.Info("reconnected to %s (%s)", dev.Path, dev.Name)
			return fd, nil
		}

		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return -1, errors.New("watcher closed")
			}
			h.opts.logger.Warn("watch %s: %v", h.inputDir, err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return -1, errors.New("watcher closed")
			}
			if !ev.Has(fsnotify.Create) || !strings.HasPrefix(filepath.Base(ev.Name), "event") {
				continue
			}
			select {
			case <-ctx.Done():
				return -1, ctx.Err()
			case <-time.After(settleDelay):
			}
		}
	}
}

func openDevice(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM) {
			return -1, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		if errors.Is(err, unix.ENOENT) {
			return -1, fmt.Errorf("%w: %s does not exist", ErrNoDevice, path)
		}
		return -1, fmt.Errorf("open %s: %w", path, err)
	}
	return fd, nil
}

// ListKeyboards probes device nodes under dir and returns the ones that
// report the keys of a full keyboard.
func ListKeyboards(dir string) ([]Device, error) {
	candidates := gatherCandidates(dir)
	devices := make([]Device, 0)
	permissionDenied := false
	var lastErr error

	for _, path := range candidates {
		fd, err := openDevice(path)
		if err != nil {
			if errors.Is(err, ErrPermission) {
				permissionDenied = true
			}
			lastErr = err
			continue
		}
		if isKeyboard(fd) {
			devices = append(devices, Device{Path: path, Name: readDeviceName(fd)})
		}
		_ = unix.Close(fd)
	}

	if len(devices) == 0 {
		switch {
		case permissionDenied:
			return nil, fmt.Errorf("%w under %s (run as root or join the input group)", ErrPermission, dir)
		case len(candidates) == 0:
			return nil, fmt.Errorf("%w: no evdev nodes under %s", ErrNoDevice, dir)
		case lastErr != nil:
			return nil, fmt.Errorf("%w: last error: %v", ErrNoDevice, lastErr)
		default:
			return nil, ErrNoDevice
		}
	}
	return devices, nil
}

func gatherCandidates(dir string) []string {
	seen := make(map[string]struct{})
	var candidates []string
	add := func(paths []string) {
		for _, p := range paths {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			candidates = append(candidates, p)
		}
	}

	// Named symlinks first so a real keyboard wins over virtual devices.
	add(keyboardSymlinks(filepath.Join(dir, "by-id")))
	add(keyboardSymlinks(filepath.Join(dir, "by-path")))
	add(eventNodes(dir))
	return candidates
}

func keyboardSymlinks(dir string) []string {
	var entries []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		lower := strings.ToLower(d.Name())
		if strings.Contains(lower, "kbd") || strings.Contains(lower, "keyboard") {
			entries = append(entries, path)
		}
		return nil
	})
	sort.Strings(entries)
	return entries
}

func eventNodes(dir string) []string {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var entries []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), "event") {
			entries = append(entries, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(entries)
	return entries
}

func ioctlRead(fd int, request uintptr, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), request, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}
	return nil
}

// ioctl request encoding for reads ('E' is the evdev ioctl type).
func iocRead(nr, size uintptr) uintptr {
	const (
		nrShift   = 0
		typeShift = 8
		sizeShift = 16
		dirShift  = 30
		dirRead   = 2
	)
	return dirRead<<dirShift | uintptr('E')<<typeShift | nr<<nrShift | size<<sizeShift
}

func eviocgbit(ev, length int) uintptr {
	return iocRead(uintptr(0x20+ev), uintptr(length))
}

func eviocgname(length int) uintptr {
	return iocRead(0x06, uintptr(length))
}

func isKeyboard(fd int) bool {
	evBits := make([]byte, bitsToBytes(evMax+1))
	if err := ioctlRead(fd, eviocgbit(0, len(evBits)), evBits); err != nil {
		return false
	}
	if !testBit(evBits, evKey) {
		return false
	}

	keyBits := make([]byte, bitsToBytes(codeMax+1))
	if err := ioctlRead(fd, eviocgbit(evKey, len(keyBits)), keyBits); err != nil {
		return false
	}
	for _, code := range []int{codeA, codeZ, codeSpace, codeEnter, codeLeftShift} {
		if !testBit(keyBits, code) {
			return false
		}
	}
	return true
}

func readDeviceName(fd int) string {
	buf := make([]byte, 256)
	if err := ioctlRead(fd, eviocgname(len(buf)), buf); err != nil {
		return ""
	}
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
