package main

import "github.com/kamlesh-analytics/maternal-health-analytics/cmd"

func main() {
	cmd.Execute()
}
