package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/bookshelf/internal/client/guard"
	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	return a.Execute(ctx, command{route: guard.RouteHome, run: a.home})
}

func (a *App) Show(ctx context.Context, id string) error {
	return a.Execute(ctx, command{route: guard.BookRoute(id), run: func(ctx context.Context) error { return a.show(ctx, id) }})
}

func (a *App) Add(ctx context.Context) error {
	return a.Execute(ctx, command{route: guard.RouteNewBook, run: a.add})
}

func (a *App) Edit(ctx context.Context, id string) error {
	return a.Execute(ctx, command{route: guard.EditBookRoute(id), run: func(ctx context.Context) error { return a.edit(ctx, id) }})
}

// Delete is gated on the book's own route.
func (a *App) Delete(ctx context.Context, id string) error {
	return a.Execute(ctx, command{route: guard.BookRoute(id), run: func(ctx context.Context) error { return a.remove(ctx, id) }})
}

func (a *App) Open(ctx context.Context, route string) error {
	return a.open(ctx, guard.Route(route))
}

// home lists the caller's books.
func (a *App) home(ctx context.Context) error {
	books, err := a.books.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		a.println("No books yet. Use 'add' to create one.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, year(b.PublishedYear))
	}
	return tw.Flush()
}

func (a *App) show(ctx context.Context, id string) error {
	b, err := a.books.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.printBook(b)
	return nil
}

func (a *App) add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		return err
	}
	if title == "" || author == "" {
		return errEmptyInput
	}
	description, err := getMultiline(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}
	yearText, err := getSimpleText(a.reader, "Enter published year (optional)", a.out)
	if err != nil {
		return err
	}
	isbn, err := getSimpleText(a.reader, "Enter ISBN (optional)", a.out)
	if err != nil {
		return err
	}

	in := models.BookInput{Title: title, Author: author, Description: description, ISBN: isbn}
	if yearText != "" {
		y, err := strconv.Atoi(yearText)
		if err != nil {
			return fmt.Errorf("%w: year must be a number", models.ErrIncorrectField)
		}
		in.PublishedYear = y
	}

	b, err := a.books.Create(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Created %s\n", b.ID)
	return nil
}

func (a *App) edit(ctx context.Context, id string) error {
	current, err := a.books.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.printBook(current)

	lines, err := getFields(a.reader, a.out)
	if err != nil {
		return err
	}
	patch, err := models.PatchFromPairs(lines)
	if err != nil {
		return err
	}
	if patch.Empty() {
		a.println("Nothing to update.")
		return nil
	}

	b, err := a.books.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	a.println("Updated.")
	a.printBook(b)
	return nil
}

func (a *App) remove(ctx context.Context, id string) error {
	if err := a.books.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Deleted %s\n", id)
	return nil
}

func (a *App) printBook(b *models.Book) {
	a.printf("ID:          %s\n", b.ID)
	a.printf("Title:       %s\n", b.Title)
	a.printf("Author:      %s\n", b.Author)
	a.printf("Year:        %s\n", year(b.PublishedYear))
	a.printf("ISBN:        %s\n", b.ISBN)
	if b.Description != "" {
		a.printf("Description: %s\n", b.Description)
	}
}

func year(y int) string {
	if y == 0 {
		return "-"
	}
	return strconv.Itoa(y)
}
