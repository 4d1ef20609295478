package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/client/services"
	"github.com/dmitrijs2005/usergate/internal/common"
)

var errBadArgument = fmt.Errorf("%w: bad argument", common.ErrInvalidInput)

// List prints the current page, fetching page 1 when nothing is loaded.
func (a *App) List(ctx context.Context) error {
	a.printList(a.list.EnsureLoaded(ctx))
	return nil
}

func (a *App) Page(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		a.println("Usage: page <n>")
		return errBadArgument
	}
	a.printList(a.list.Load(ctx, n))
	return nil
}

// Search sets the filter term; an empty term clears it.
func (a *App) Search(ctx context.Context, term string) error {
	a.list.EnsureLoaded(ctx)
	a.printList(a.list.SetTerm(term))
	return nil
}

func (a *App) Show(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		a.println("Usage: show <id>")
		return err
	}

	u, err := a.dir.User(ctx, id)
	if err != nil {
		a.println(services.MsgLoadUserFailed)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", u.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", u.FullName())
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Avatar:\t%s\n", u.AvatarURL())
	return tw.Flush()
}

// Edit prompts for each field with the current value as default and saves.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		a.println("Usage: edit <id>")
		return err
	}

	u, err := a.dir.User(ctx, id)
	if err != nil {
		a.println(services.MsgLoadUserFailed)
		return err
	}

	form := models.UpdateFrom(*u)
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"First Name", &form.FirstName},
		{"Last Name", &form.LastName},
		{"Email Address", &form.Email},
	} {
		v, err := getTextWithDefault(a.in, f.prompt, *f.dst, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if err := a.dir.Update(ctx, id, form); err != nil {
		a.println(services.Message(err))
		return err
	}
	a.println(services.MsgUpdated)
	return nil
}

// Delete asks for confirmation, then deletes. Only users on the loaded
// page can be deleted; a failed delete is silently ignored.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		a.println("Usage: delete <id>")
		return err
	}

	u, ok := a.list.Find(id)
	if !ok {
		a.printf("User %d is not on the current page\n", id)
		return common.ErrNotFound
	}

	prompt := fmt.Sprintf("Are you sure you want to delete %s %s's profile? This action cannot be undone.", u.FirstName, u.LastName)
	if !Confirm(a.in, prompt, a.out) {
		return nil
	}
	if a.list.Delete(ctx, id) {
		a.println("Deleted")
	}
	return nil
}

func (a *App) printList(v services.ListView) {
	if !v.Settled {
		a.println("No users loaded")
		return
	}
	if len(v.Users) == 0 {
		a.println("No users found")
	} else {
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, u := range v.Users {
			fmt.Fprintln(tw, u.String())
		}
		_ = tw.Flush()
	}

	a.printf("page %d of %d", v.Page, v.TotalPages)
	if v.Term != "" {
		a.printf(", search %q", v.Term)
	}
	a.println()
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, errBadArgument
	}
	return id, nil
}
