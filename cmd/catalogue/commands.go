package main

import (
	"context"

	"github.com/spf13/cobra"

	"catalogue/app"
	"catalogue/data/filter"
	"catalogue/domain/datatype"
)

// listFlags 列表查询共用参数
type listFlags struct {
	titleContains string
	titleBegins   string
	offset        int
	limit         int
}

func (f *listFlags) register(cmd *cobra.Command, paged bool) {
	cmd.Flags().StringVar(&f.titleContains, "title-contains", "", "title contains the given text")
	cmd.Flags().StringVar(&f.titleBegins, "title-begins", "", "title begins with the given text")
	if paged {
		cmd.Flags().IntVar(&f.offset, "offset", 0, "number of rows to skip")
		cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of rows (0 = unlimited)")
	}
}

func (f *listFlags) title(cmd *cobra.Command) *filter.StringFilter {
	var contains, begins *string
	if cmd.Flags().Changed("title-contains") {
		contains = &f.titleContains
	}
	if cmd.Flags().Changed("title-begins") {
		begins = &f.titleBegins
	}
	return filter.NewStringFilter(nil, contains, begins)
}

func (f *listFlags) pagination(cmd *cobra.Command) (*filter.Pagination, error) {
	if !cmd.Flags().Changed("offset") && !cmd.Flags().Changed("limit") {
		return nil, nil
	}
	return filter.NewPagination(f.offset, f.limit)
}

func idFilter(cmd *cobra.Command, flag, value string) *filter.IDFilter {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return filter.NewIDFilter(value)
}

func newCategoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "category", Short: "Category lookups"}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a category by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				c, err := a.Categories.Category(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return newCategoryView(c), nil
			})
		},
	})

	var lf listFlags
	var parent string
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := datatype.NewCategoryFilterList(lf.title(cmd), idFilter(cmd, "parent", parent))
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				items, err := a.Categories.Categories(ctx, l)
				if err != nil {
					return nil, err
				}
				return mapViews(items, newCategoryView), nil
			})
		},
	}
	lf.register(list, false)
	list.Flags().StringVar(&parent, "parent", "", "parent category id")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "children <id>",
		Short: "List the direct children of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				c, err := a.Categories.Category(ctx, args[0])
				if err != nil {
					return nil, err
				}
				children, err := a.CategoryRelations.Children(ctx, c)
				if err != nil {
					return nil, err
				}
				return mapViews(children, newCategoryView), nil
			})
		},
	})
	return cmd
}

func newManufacturerCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "manufacturer", Short: "Manufacturer lookups"}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a manufacturer by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				m, err := a.Manufacturers.Manufacturer(ctx, args[0])
				if err != nil {
					return nil, err
				}
				return newManufacturerView(m), nil
			})
		},
	})

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List manufacturers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := datatype.NewManufacturerFilterList(lf.title(cmd))
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				items, err := a.Manufacturers.Manufacturers(ctx, l)
				if err != nil {
					return nil, err
				}
				return mapViews(items, newManufacturerView), nil
			})
		},
	}
	lf.register(list, false)
	cmd.AddCommand(list)
	return cmd
}

func newProductCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "product", Short: "Product lookups"}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a product with its manufacturer and stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				p, err := a.Products.Product(ctx, args[0])
				if err != nil {
					return nil, err
				}
				m, err := a.ProductRelations.Manufacturer(ctx, p)
				if err != nil {
					return nil, err
				}
				stock, err := a.ProductRelations.Stock(ctx, p)
				if err != nil {
					return nil, err
				}
				v := newProductView(p)
				v.Manufacturer = newManufacturerView(m)
				v.Stock = newStockView(stock)
				return v, nil
			})
		},
	})

	var (
		lf           listFlags
		manufacturer string
		priceMin     float64
		priceMax     float64
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			price, err := priceFilter(cmd, priceMin, priceMax)
			if err != nil {
				return err
			}
			page, err := lf.pagination(cmd)
			if err != nil {
				return err
			}
			l := datatype.NewProductFilterList(lf.title(cmd), idFilter(cmd, "manufacturer", manufacturer), price)
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				items, err := a.Products.Products(ctx, l, page)
				if err != nil {
					return nil, err
				}
				return mapViews(items, newProductView), nil
			})
		},
	}
	lf.register(list, true)
	list.Flags().StringVar(&manufacturer, "manufacturer", "", "manufacturer id")
	list.Flags().Float64Var(&priceMin, "price-min", 0, "minimum price (inclusive)")
	list.Flags().Float64Var(&priceMax, "price-max", 0, "maximum price (inclusive)")
	cmd.AddCommand(list)
	return cmd
}

// priceFilter 两端都给出时为闭区间，否则为单边开区间
func priceFilter(cmd *cobra.Command, lower, upper float64) (*filter.FloatFilter, error) {
	hasMin, hasMax := cmd.Flags().Changed("price-min"), cmd.Flags().Changed("price-max")
	switch {
	case hasMin && hasMax:
		return filter.NumberBetween(lower, upper)
	case hasMin:
		return filter.NewNumberFilter[float64](nil, nil, &lower, nil)
	case hasMax:
		return filter.NewNumberFilter[float64](nil, &upper, nil, nil)
	default:
		return nil, nil
	}
}

func newReviewCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "review", Short: "Review lookups"}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a review with its author and product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				r, err := a.Reviews.Review(ctx, args[0])
				if err != nil {
					return nil, err
				}
				user, err := a.ReviewRelations.User(ctx, r)
				if err != nil {
					return nil, err
				}
				product, err := a.ReviewRelations.Product(ctx, r)
				if err != nil {
					return nil, err
				}
				v := newReviewView(r)
				v.User = newUserView(user)
				v.Product = newProductView(product)
				return v, nil
			})
		},
	})

	var (
		lf      listFlags
		product string
		user    string
		rating  int64
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ratingFilter *filter.IntegerFilter
			if cmd.Flags().Changed("rating") {
				ratingFilter = filter.NumberEquals(rating)
			}
			page, err := lf.pagination(cmd)
			if err != nil {
				return err
			}
			l := datatype.NewReviewFilterList(idFilter(cmd, "product", product), idFilter(cmd, "user", user), ratingFilter)
			return opts.run(cmd, func(ctx context.Context, a *app.App) (any, error) {
				items, err := a.Reviews.Reviews(ctx, l, page)
				if err != nil {
					return nil, err
				}
				return mapViews(items, newReviewView), nil
			})
		},
	}
	list.Flags().IntVar(&lf.offset, "offset", 0, "number of rows to skip")
	list.Flags().IntVar(&lf.limit, "limit", 0, "maximum number of rows (0 = unlimited)")
	list.Flags().StringVar(&product, "product", "", "reviewed product id")
	list.Flags().StringVar(&user, "user", "", "author id")
	list.Flags().Int64Var(&rating, "rating", 0, "exact rating")
	cmd.AddCommand(list)
	return cmd
}
