package main

import (
	"context"

	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/admin"
)

// addAdmin creates a dashboard admin account.
func (cli *commandLine) addAdmin(uname, pwd string) error {
	uname = core.CleanString(uname, true /* lower */)
	if _, err := cli.adminSvc.Create(context.Background(), admin.NewAdmin{Username: uname, Password: pwd}); err != nil {
		return err
	}
	return nil
}
