// Package hostinfo detects the runtime environment the server binds in:
// container markers, the local network address, and the bind address to use
// for a given environment.
package hostinfo

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// InContainer reports whether the process runs inside a container, based on
// the Docker environment file and the init process cgroup.
func InContainer() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	cgroup, err := os.ReadFile("/proc/1/cgroup")
	if err != nil {
		return false
	}
	content := string(cgroup)
	return strings.Contains(content, "docker") ||
		strings.Contains(content, "kubepods") ||
		strings.Contains(content, "containerd")
}

// BindAddress picks the address to listen on. Containerized and production
// deployments bind all interfaces; development binds loopback unless HOST
// overrides it.
func BindAddress(env, host string) string {
	if InContainer() || env == "production" {
		return "0.0.0.0"
	}
	if host != "" {
		return host
	}
	return "localhost"
}

// LocalIP returns the machine's first non-loopback IPv4 address, falling
// back to loopback.
func LocalIP() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "127.0.0.1"
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil && !ip4.IsLoopback() {
				return ip4.String()
			}
		}
	}
	return "127.0.0.1"
}

// ServerURLs lists the addresses the server is reachable on.
func ServerURLs(port string) []string {
	urls := []string{
		fmt.Sprintf("http://localhost:%s", port),
		fmt.Sprintf("http://127.0.0.1:%s", port),
	}
	if ip := LocalIP(); ip != "127.0.0.1" {
		urls = append(urls, fmt.Sprintf("http://%s:%s", ip, port))
	}
	return urls
}
