/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package platform reports about the host the tool runs on.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// PathSeparator is the OS-specific path separator.
const PathSeparator = os.PathSeparator

// ConvertError maps platform errors onto commonerrors.
func ConvertError(err error) error {
	if err == nil {
		return nil
	}
	if commonerrors.Any(err, commonerrors.ErrNotImplemented, commonerrors.ErrUnsupported) {
		return err
	}
	if commonerrors.CorrespondTo(err, "not supported") {
		return fmt.Errorf("%w: %v", commonerrors.ErrUnsupported, err.Error())
	}
	return err
}

// IsWindows states whether the host is running Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// LineSeparator returns the line separator of the host.
func LineSeparator() string {
	if IsWindows() {
		return "\r\n"
	}
	return UnixLineSeparator()
}

// UnixLineSeparator returns the line separator used on Unix platforms.
func UnixLineSeparator() string {
	return "\n"
}

// Hostname returns the hostname.
func Hostname() (string, error) {
	return os.Hostname()
}

// UpTime returns how long the host has been up.
func UpTime() (uptime time.Duration, err error) {
	seconds, err := host.Uptime()
	if err != nil {
		return
	}
	uptime = time.Duration(seconds) * time.Second
	return
}

// BootTime returns when the host was booted.
func BootTime() (bootTime time.Time, err error) {
	epoch, err := host.BootTime()
	if err != nil {
		return
	}
	bootTime = time.Unix(int64(epoch), 0)
	return
}

// NodeName returns the node name of the host (uname -n).
func NodeName() (nodename string, err error) {
	info, err := host.Info()
	if err != nil {
		return
	}
	nodename = fmt.Sprintf("%v (%v)", info.Hostname, info.HostID)
	return
}

// PlatformInformation returns the operating system identification of the host (uname -s).
func PlatformInformation() (information string, err error) {
	name, family, version, err := host.PlatformInformation()
	if err != nil {
		return
	}
	information = fmt.Sprintf("%v (%v/%v)", name, family, version)
	return
}

// SystemInformation aggregates host, node, platform and uptime details (uname -a).
// Flows record it so an audit trail states which machine performed the mutations.
func SystemInformation() (information string, err error) {
	hostname, err := Hostname()
	if err != nil {
		return
	}
	nodename, err := NodeName()
	if err != nil {
		return
	}
	osInfo, err := PlatformInformation()
	if err != nil {
		return
	}
	uptime, err := UpTime()
	if err != nil {
		return
	}
	booted, err := BootTime()
	if err != nil {
		return
	}
	information = fmt.Sprintf("Host: %v, Node: %v, Platform: %v, Up time: %v, Boot time: %v", hostname, nodename, osInfo, uptime, booted)
	return
}

// RAM describes the memory of the host.
type RAM interface {
	// GetTotal returns the total amount of RAM on this system.
	GetTotal() uint64
	// GetAvailable returns the RAM available for programs to allocate.
	GetAvailable() uint64
	// GetUsed returns the RAM used by programs.
	GetUsed() uint64
	// GetUsedPercent returns the percentage of RAM used by programs.
	GetUsedPercent() float64
	// GetFree returns the kernel's notion of free memory.
	GetFree() uint64
}

type VirtualMemory struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
	Free        uint64
}

func (m *VirtualMemory) GetTotal() uint64        { return m.Total }
func (m *VirtualMemory) GetAvailable() uint64    { return m.Available }
func (m *VirtualMemory) GetUsed() uint64         { return m.Used }
func (m *VirtualMemory) GetUsedPercent() float64 { return m.UsedPercent }
func (m *VirtualMemory) GetFree() uint64         { return m.Free }

// GetRAM samples the memory usage of the host.
func GetRAM() (ram RAM, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	ram = &VirtualMemory{
		Total:       vm.Total,
		Available:   vm.Available,
		Used:        vm.Used,
		UsedPercent: vm.UsedPercent,
		Free:        vm.Free,
	}
	return
}
